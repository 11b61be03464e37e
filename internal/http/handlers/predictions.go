package handlers

import (
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/preston-bernstein/fightcard-service/internal/domain/fights"
	domainpredictions "github.com/preston-bernstein/fightcard-service/internal/domain/predictions"
	"github.com/preston-bernstein/fightcard-service/internal/predictions"
)

// Predictions returns the predictions view for the current user.
func (h *Handler) Predictions(w nethttp.ResponseWriter, r *nethttp.Request) {
	query := r.URL.Query()
	status, ok := domainpredictions.ParseStatus(query.Get("status"))
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "status must be all, correct, wrong or pending", h.logger)
		return
	}
	dir, ok := predictions.ParseDirection(query.Get("sort"))
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "sort must be asc or desc", h.logger)
		return
	}

	view, err := h.predictions.View(r.Context(), predictions.Query{
		Search:    query.Get("q"),
		Status:    status,
		Direction: dir,
	})
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, view, h.logger)
}

// Prediction returns the current user's prediction for one fight. The path
// holds a numeric fight id or a names key.
func (h *Handler) Prediction(w nethttp.ResponseWriter, r *nethttp.Request) {
	ref, ok := fightRef(r.PathValue("fightID"))
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid fight id", h.logger)
		return
	}
	p, err := h.predictions.Get(r.Context(), ref)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, p, h.logger)
}

// CreatePrediction validates and submits a prediction.
func (h *Handler) CreatePrediction(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body domainpredictions.Create
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if err := h.predictions.Create(r.Context(), body); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusCreated, map[string]string{"status": "created"}, h.logger)
}

func fightRef(raw string) (fights.Ref, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fights.Ref{}, false
	}
	if id, err := strconv.Atoi(raw); err == nil {
		if id <= 0 {
			return fights.Ref{}, false
		}
		return fights.RefByID(id), true
	}
	return fights.Ref{Key: raw}, true
}
