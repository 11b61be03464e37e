package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/fightcard-service/internal/api"
	"github.com/preston-bernstein/fightcard-service/internal/app/account"
	appfighters "github.com/preston-bernstein/fightcard-service/internal/app/fighters"
	apppredictions "github.com/preston-bernstein/fightcard-service/internal/app/predictions"
	domainpredictions "github.com/preston-bernstein/fightcard-service/internal/domain/predictions"
	"github.com/preston-bernstein/fightcard-service/internal/http/middleware"
	"github.com/preston-bernstein/fightcard-service/internal/logging"
	"github.com/preston-bernstein/fightcard-service/internal/session"
)

// upstream statuses passed through to the caller as-is
var passthroughStatuses = map[int]bool{
	http.StatusBadRequest:          true,
	http.StatusUnauthorized:        true,
	http.StatusForbidden:           true,
	http.StatusNotFound:            true,
	http.StatusConflict:            true,
	http.StatusUnprocessableEntity: true,
}

var validationErrors = []error{
	domainpredictions.ErrMissingFight,
	domainpredictions.ErrMissingWinner,
	domainpredictions.ErrInvalidMethod,
	domainpredictions.ErrRoundNotAllowed,
	domainpredictions.ErrRoundOutOfRange,
	account.ErrMissingCredentials,
	appfighters.ErrEmptyQuery,
	api.ErrIncompatible,
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", logging.FieldError, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps a service failure onto a status and message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status, message := statusFor(err)
	log := loggerFromContext(r, logger)
	if status >= http.StatusInternalServerError {
		logging.Error(log, "request failed", err, logging.FieldStatusCode, status)
	} else {
		logging.Info(log, "request rejected", logging.FieldError, err, logging.FieldStatusCode, status)
	}
	writeError(w, r, status, message, logger)
}

func statusFor(err error) (int, string) {
	if errors.Is(err, session.ErrNoSession) {
		return http.StatusUnauthorized, session.ErrNoSession.Error()
	}
	if errors.Is(err, apppredictions.ErrNotFound) {
		return http.StatusNotFound, err.Error()
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, err.Error()
		}
	}
	if apiErr, ok := api.AsError(err); ok {
		switch {
		case apiErr.Timeout:
			return http.StatusGatewayTimeout, apiErr.Error()
		case passthroughStatuses[apiErr.StatusCode]:
			return apiErr.StatusCode, apiErr.Error()
		default:
			return http.StatusBadGateway, apiErr.Error()
		}
	}
	if errors.Is(err, context.Canceled) {
		return http.StatusServiceUnavailable, "request canceled"
	}
	return http.StatusInternalServerError, "internal error"
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
