package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/session"
)

const (
	defaultScoreLimit = 10
	maxScoreLimit     = 100
)

type handler struct {
	sessions *session.Manager
	scores   ScoreStore
}

// createSession handles POST /api/v1/sessions
func (h *handler) createSession(w http.ResponseWriter, _ *http.Request) {
	snap, err := h.sessions.Create()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionFromSnapshot(snap))
}

// getSession handles GET /api/v1/sessions/{id}
func (h *handler) getSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionFromSnapshot(snap))
}

// deleteSession handles DELETE /api/v1/sessions/{id}
func (h *handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// move handles POST /api/v1/sessions/{id}/moves
func (h *handler) move(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStatus(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Unknown actions reach the engine, which leaves the board as is.
	snap, err := h.sessions.Move(mux.Vars(r)["id"], t2048.ParseAction(req.Action))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionFromSnapshot(snap))
}

// topScores handles GET /api/v1/scores/{mode}?limit=N
func (h *handler) topScores(w http.ResponseWriter, r *http.Request) {
	if h.scores == nil {
		writeErrorStatus(w, http.StatusServiceUnavailable, "scores are not available")
		return
	}

	mode := mux.Vars(r)["mode"]
	if mode != session.GameID && !registry.Exists(mode) {
		writeErrorStatus(w, http.StatusNotFound, "unknown mode")
		return
	}

	limit := defaultScoreLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeErrorStatus(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxScoreLimit)
	}

	entries, err := h.scores.TopScores(mode, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := ScoresResponse{Mode: mode, Scores: make([]ScoreResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Scores = append(resp.Scores, ScoreResponse{Score: e.Score, Moves: e.Moves, CreatedAt: e.CreatedAt})
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeError maps domain errors to status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeErrorStatus(w, http.StatusNotFound, "session not found")
	default:
		writeErrorStatus(w, http.StatusInternalServerError, "internal error")
	}
}
