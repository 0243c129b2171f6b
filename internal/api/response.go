package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/session"
)

// MoveRequest is the body of POST /sessions/{id}/moves.
type MoveRequest struct {
	Action string `json:"action"`
}

// SessionResponse describes a session. Empty cells are 0.
type SessionResponse struct {
	ID       string                                `json:"id"`
	Board    [t2048.BoardSize][t2048.BoardSize]int `json:"board"`
	Score    int                                   `json:"score"`
	HasEnded bool                                  `json:"has_ended"`
	Moves    int                                   `json:"moves"`
}

// ScoreResponse is one high score entry.
type ScoreResponse struct {
	Score     int       `json:"score"`
	Moves     int       `json:"moves"`
	CreatedAt time.Time `json:"created_at"`
}

// ScoresResponse lists the best scores for a mode.
type ScoresResponse struct {
	Mode   string          `json:"mode"`
	Scores []ScoreResponse `json:"scores"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func sessionFromSnapshot(s session.Snapshot) SessionResponse {
	return SessionResponse{
		ID:       s.ID,
		Board:    s.Board,
		Score:    s.Score,
		HasEnded: s.HasEnded,
		Moves:    s.Moves,
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func writeErrorStatus(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
