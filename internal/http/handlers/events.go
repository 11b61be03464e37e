package handlers

import (
	nethttp "net/http"

	domainevents "github.com/preston-bernstein/fightcard-service/internal/domain/events"
)

const (
	defaultEventLimit     = 20
	defaultMainEventLimit = 5
)

// Events lists upcoming or past events.
func (h *Handler) Events(w nethttp.ResponseWriter, r *nethttp.Request) {
	filter, ok := domainevents.ParseFilter(r.URL.Query().Get("filter"))
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "filter must be upcoming or past", h.logger)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	limit, err := queryLimit(r, defaultEventLimit)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	list, err := h.events.List(r.Context(), filter, offset, limit)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"filter": filter,
		"offset": offset,
		"events": list,
	}, h.logger)
}

// MainEvents returns the headline bouts of the next cards.
func (h *Handler) MainEvents(w nethttp.ResponseWriter, r *nethttp.Request) {
	limit, err := queryLimit(r, defaultMainEventLimit)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	list, err := h.events.Main(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, list, h.logger)
}

// EventFights returns an event's fight card.
func (h *Handler) EventFights(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid event id", h.logger)
		return
	}
	card, err := h.events.Fights(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, card, h.logger)
}
