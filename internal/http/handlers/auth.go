package handlers

import (
	nethttp "net/http"

	"github.com/preston-bernstein/fightcard-service/internal/domain/auth"
	"github.com/preston-bernstein/fightcard-service/internal/logging"
)

// Register creates an account upstream.
func (h *Handler) Register(w nethttp.ResponseWriter, r *nethttp.Request) {
	var creds auth.Credentials
	if err := decodeBody(w, r, &creds); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if err := h.account.Register(r.Context(), creds); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusCreated, map[string]string{"status": "registered"}, h.logger)
}

// Login authenticates and persists the session.
func (h *Handler) Login(w nethttp.ResponseWriter, r *nethttp.Request) {
	var creds auth.Credentials
	if err := decodeBody(w, r, &creds); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	sess, err := h.account.Login(r.Context(), creds)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "login succeeded", logging.FieldUsername, sess.Username)
	writeJSON(w, nethttp.StatusOK, sess, h.logger)
}

// Logout clears the stored session.
func (h *Handler) Logout(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := h.account.Logout(r.Context()); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(nethttp.StatusNoContent)
}

// Session returns the logged-in user.
func (h *Handler) Session(w nethttp.ResponseWriter, r *nethttp.Request) {
	sess, err := h.account.Current(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, sess, h.logger)
}
