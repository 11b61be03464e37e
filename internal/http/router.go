package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/fightcard-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(h *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)

	mux.HandleFunc("GET /events", h.Events)
	mux.HandleFunc("GET /events/main", h.MainEvents)
	mux.HandleFunc("GET /events/{id}/fights", h.EventFights)

	mux.HandleFunc("GET /fighters", h.Fighters)
	mux.HandleFunc("GET /fighters/search", h.SearchFighters)
	mux.HandleFunc("GET /fighters/{id}", h.Fighter)
	mux.HandleFunc("GET /fighters/{id}/fights", h.FighterFights)

	mux.HandleFunc("POST /auth/register", h.Register)
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/session", h.Session)

	mux.HandleFunc("GET /predictions", h.Predictions)
	mux.HandleFunc("POST /predictions", h.CreatePrediction)
	mux.HandleFunc("GET /predictions/{fightID}", h.Prediction)
	return mux
}
