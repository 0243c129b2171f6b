// Package api exposes 2048 sessions over HTTP.
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// ScoreStore is the read side of score storage.
type ScoreStore interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

// RouterConfig holds configuration for the API router.
type RouterConfig struct {
	Logger   *log.Logger
	Sessions *session.Manager
	Scores   ScoreStore // Optional, can be nil
}

// NewRouter creates the API router with all routes configured.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	r := mux.NewRouter()
	h := &handler{sessions: cfg.Sessions, scores: cfg.Scores}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(Recovery(cfg.Logger))
	api.Use(Logging(cfg.Logger))

	api.HandleFunc("/sessions", h.createSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", h.getSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", h.deleteSession).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/moves", h.move).Methods(http.MethodPost)
	api.HandleFunc("/scores/{mode}", h.topScores).Methods(http.MethodGet)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
