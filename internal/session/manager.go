package session

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Manager tracks active sessions.
// Thread-safe for concurrent access.
type Manager struct {
	policy  t2048.SpawnPolicy
	newRand RandFactory
	saver   ScoreSaver // Optional, can be nil
	logger  *log.Logger
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// Option configures a Manager.
type Option func(*Manager)

// WithSpawnPolicy sets the spawn policy for new sessions.
func WithSpawnPolicy(p t2048.SpawnPolicy) Option {
	return func(m *Manager) { m.policy = p }
}

// WithRand sets the spawn source factory. Each session gets its own source.
func WithRand(f RandFactory) Option {
	return func(m *Manager) { m.newRand = f }
}

// WithScoreSaver sets where finished games are recorded.
func WithScoreSaver(s ScoreSaver) Option {
	return func(m *Manager) { m.saver = s }
}

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates an empty session manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		policy:   t2048.SpawnAlways,
		newRand:  defaultRand,
		now:      time.Now,
		sessions: make(map[string]*Session),
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "session",
		}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a new game and returns its initial state.
func (m *Manager) Create() (Snapshot, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Snapshot{}, err
	}

	engine := t2048.NewEngine(m.newRand(), t2048.WithSpawnPolicy(m.policy))
	res := engine.Initialize()
	now := m.now()

	s := &Session{
		id:       id.String(),
		created:  now,
		engine:   engine,
		board:    res.Board,
		score:    res.Score,
		ended:    res.HasEnded,
		lastSeen: now,
	}
	snap := s.snapshot()

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	m.logger.Debug("session created", "id", s.id)
	return snap, nil
}

// Get returns the current state of a session.
func (m *Manager) Get(id string) (Snapshot, error) {
	s, ok := m.lookup(id)
	if !ok {
		return Snapshot{}, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = m.now()
	return s.snapshot(), nil
}

// Move applies an action to a session. Unrecognized actions and moves on
// a finished game leave the board unchanged.
func (m *Manager) Move(id string, a t2048.Action) (Snapshot, error) {
	s, ok := m.lookup(id)
	if !ok {
		return Snapshot{}, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accepted := a.Valid() && !s.ended
	res := s.engine.HandleMove(s.board, a)
	s.board = res.Board
	s.score = res.Score
	s.ended = res.HasEnded
	s.lastSeen = m.now()
	if accepted {
		s.moves++
	}

	if s.ended && !s.saved {
		s.saved = true
		m.logger.Info("session ended", "id", s.id, "score", s.score, "moves", s.moves)
		if m.saver != nil {
			if err := m.saver.SaveSessionScore(GameID, s.score, s.moves); err != nil {
				m.logger.Warn("could not save score", "id", s.id, "error", err)
			}
		}
	}

	return s.snapshot(), nil
}

// Delete removes a session.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	m.logger.Debug("session deleted", "id", id)
	return nil
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Prune removes sessions idle for longer than ttl and returns how many were removed.
func (m *Manager) Prune(now time.Time, ttl time.Duration) int {
	cutoff := now.Add(-ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.idleSince(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Info("pruned idle sessions", "removed", removed, "active", len(m.sessions))
	}
	return removed
}

// Run prunes idle sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Prune(m.now(), ttl)
		case <-ctx.Done():
			return
		}
	}
}

func (m *Manager) lookup(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}
