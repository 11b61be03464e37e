package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/fightcard-service/internal/app/account"
	appevents "github.com/preston-bernstein/fightcard-service/internal/app/events"
	appfighters "github.com/preston-bernstein/fightcard-service/internal/app/fighters"
	apppredictions "github.com/preston-bernstein/fightcard-service/internal/app/predictions"
	"github.com/preston-bernstein/fightcard-service/internal/poller"
)

// Services groups the application services the handlers call.
type Services struct {
	Events      *appevents.Service
	Fighters    *appfighters.Service
	Predictions *apppredictions.Service
	Account     *account.Service
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	events      *appevents.Service
	fighters    *appfighters.Service
	predictions *apppredictions.Service
	account     *account.Service
	logger      *slog.Logger
	statusFn    func() poller.Status
}

// NewHandler constructs a Handler. statusFn reports upstream health for
// /ready; nil means always ready.
func NewHandler(svcs Services, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		events:      svcs.Events,
		fighters:    svcs.Fighters,
		predictions: svcs.Predictions,
		account:     svcs.Account,
		logger:      logger,
		statusFn:    statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the fight API has answered the probe recently.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}
