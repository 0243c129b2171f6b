// Package session keeps many independent 2048 games alive at once, each
// addressed by a uuid. It backs the HTTP API.
package session

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// GameID is the score table name used for API games.
const GameID = "2048_api"

// ErrNotFound is returned for unknown or pruned session ids.
var ErrNotFound = errors.New("session: not found")

// ScoreSaver persists the result of a finished session.
// This lets the manager save scores without depending on the storage package.
type ScoreSaver interface {
	SaveSessionScore(gameID string, score, moves int) error
}

// Snapshot is a copy of a session's state, safe to hand to other goroutines.
type Snapshot struct {
	ID        string
	Board     [t2048.BoardSize][t2048.BoardSize]int
	Score     int
	HasEnded  bool
	Moves     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Session is a single game. Moves on one session are serialized.
type Session struct {
	id      string
	created time.Time

	mu       sync.Mutex
	engine   *t2048.Engine
	board    *t2048.Board
	score    int
	ended    bool
	moves    int
	saved    bool
	lastSeen time.Time
}

// snapshot must be called with s.mu held.
func (s *Session) snapshot() Snapshot {
	return Snapshot{
		ID:        s.id,
		Board:     s.board.Grid(),
		Score:     s.score,
		HasEnded:  s.ended,
		Moves:     s.moves,
		CreatedAt: s.created,
		UpdatedAt: s.lastSeen,
	}
}

// idleSince reports whether the session was last touched before cutoff.
func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen.Before(cutoff)
}

// RandFactory returns the spawn source for a new session.
type RandFactory func() t2048.Rand

func defaultRand() t2048.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
