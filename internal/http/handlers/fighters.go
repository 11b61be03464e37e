package handlers

import (
	nethttp "net/http"

	appfighters "github.com/preston-bernstein/fightcard-service/internal/app/fighters"
)

// Fighters returns the merged roster pages, filtered locally by q.
func (h *Handler) Fighters(w nethttp.ResponseWriter, r *nethttp.Request) {
	pages, err := queryInt(r, "pages", 1)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	limit, err := queryLimit(r, 0)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	list, err := h.fighters.Roster(r.Context(), appfighters.RosterQuery{
		Pages:    pages,
		PageSize: limit,
		Filter:   r.URL.Query().Get("q"),
	})
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, list, h.logger)
}

// SearchFighters runs the backend fighter search.
func (h *Handler) SearchFighters(w nethttp.ResponseWriter, r *nethttp.Request) {
	res, err := h.fighters.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

// Fighter returns a fighter profile.
func (h *Handler) Fighter(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid fighter id", h.logger)
		return
	}
	profile, err := h.fighters.Profile(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, profile, h.logger)
}

// FighterFights returns a fighter's past bouts.
func (h *Handler) FighterFights(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid fighter id", h.logger)
		return
	}
	history, err := h.fighters.History(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, history, h.logger)
}
