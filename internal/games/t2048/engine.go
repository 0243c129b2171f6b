package t2048

import (
	"fmt"
	"strings"
)

// Action is a logical move direction.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
)

// String returns the lowercase action name.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	default:
		return "none"
	}
}

// Valid reports whether a is one of the four directions.
func (a Action) Valid() bool {
	return a >= ActionUp && a <= ActionRight
}

// ParseAction accepts "up", "down", "left", "right" and the browser key
// names "ArrowUp" etc., ignoring case. Anything else maps to ActionNone.
func ParseAction(s string) Action {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "arrowup":
		return ActionUp
	case "down", "arrowdown":
		return ActionDown
	case "left", "arrowleft":
		return ActionLeft
	case "right", "arrowright":
		return ActionRight
	default:
		return ActionNone
	}
}

// SpawnPolicy decides whether HandleMove spawns after an action that
// left the board unchanged.
type SpawnPolicy string

const (
	// SpawnAlways spawns after every accepted action.
	SpawnAlways SpawnPolicy = "always"
	// SpawnOnChange spawns only when the action changed a tile.
	SpawnOnChange SpawnPolicy = "on_change"
)

// ParseSpawnPolicy validates a policy name. Empty means SpawnAlways.
func ParseSpawnPolicy(s string) (SpawnPolicy, error) {
	switch SpawnPolicy(s) {
	case "", SpawnAlways:
		return SpawnAlways, nil
	case SpawnOnChange:
		return SpawnOnChange, nil
	default:
		return "", fmt.Errorf("t2048: unknown spawn policy %q", s)
	}
}

// Result is returned after each action.
type Result struct {
	Board    *Board
	HasEnded bool
	Score    int
	Changed  bool // whether the action itself moved or merged a tile
}

// Engine applies actions to boards. It keeps no board state of its own;
// the caller owns the board and must not share it across concurrent moves.
type Engine struct {
	rng    Rand
	policy SpawnPolicy
}

// Option configures an Engine.
type Option func(*Engine)

// WithSpawnPolicy sets the spawn policy.
func WithSpawnPolicy(p SpawnPolicy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// NewEngine creates an engine drawing spawn positions from rng.
func NewEngine(rng Rand, opts ...Option) *Engine {
	e := &Engine{
		rng:    rng,
		policy: SpawnAlways,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy returns the configured spawn policy.
func (e *Engine) Policy() SpawnPolicy {
	return e.policy
}

// Initialize creates a new board with one spawned tile.
func (e *Engine) Initialize() Result {
	board := NewBoard().SpawnRandomTile(e.rng)
	return Result{Board: board}
}

// HandleMove applies a to b in place, spawns a tile and recomputes the
// end state and score. Unknown actions and moves on an ended board
// return b untouched.
func (e *Engine) HandleMove(b *Board, a Action) Result {
	if !a.Valid() || HasGameEnded(b) {
		return Result{Board: b, HasEnded: HasGameEnded(b), Score: Score(b)}
	}

	changed := PerformAction(b, a)
	if changed || e.policy != SpawnOnChange {
		b.SpawnRandomTile(e.rng)
	}

	return Result{
		Board:    b,
		HasEnded: HasGameEnded(b),
		Score:    Score(b),
		Changed:  changed,
	}
}

// PerformAction runs the merge pass and then the slide pass over the four
// lines facing a. Lines are fetched fresh for each pass. It reports whether
// any tile value changed.
func PerformAction(b *Board, a Action) bool {
	var lines func() [BoardSize]Line
	reverse := false

	switch a {
	case ActionUp:
		lines = b.Columns
	case ActionDown:
		lines, reverse = b.Columns, true
	case ActionLeft:
		lines = b.Rows
	case ActionRight:
		lines, reverse = b.Rows, true
	default:
		return false
	}

	before := b.Values()
	for _, pass := range []func(Line){Merge, Move} {
		for _, l := range lines() {
			if reverse {
				l = l.Reversed()
			}
			pass(l)
		}
	}
	return b.Values() != before
}

// HasGameEnded is true for a full board on which no row or column, in
// either orientation, admits a merge or a slide.
func HasGameEnded(b *Board) bool {
	if !b.IsFull() {
		return false
	}

	rows, cols := b.Rows(), b.Columns()
	lines := append(rows[:], cols[:]...)
	for _, l := range lines {
		for _, oriented := range []Line{l, l.Reversed()} {
			if SimulateMerge(oriented) || SimulateMove(oriented) {
				return false
			}
		}
	}
	return true
}

// Score is the largest tile value on the board, 0 when empty.
func Score(b *Board) int {
	best := 0
	for _, v := range b.Values() {
		if v > best {
			best = v
		}
	}
	return best
}
