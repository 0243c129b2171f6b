package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// levelClearDelay is how long the "level cleared" banner stays up (2s at 60fps).
const levelClearDelay = 120

// Game adapts the engine to the platform's tick loop.
type Game struct {
	mode   Mode
	rng    *rand.Rand
	engine *Engine
	tick   uint64

	board         *Board
	score         int
	moves         int
	levelIndex    int // Current level (0-indexed)
	currentTarget int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int

	startLevel int // 1-based, 0 starts from the first level
}

// spawnPolicy applies to games reset after SetSpawnPolicy.
var spawnPolicy = SpawnAlways

// SetSpawnPolicy sets the spawn policy used by games created afterwards.
func SetSpawnPolicy(p SpawnPolicy) {
	spawnPolicy = p
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
	registry.Register("2048_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "2048_endless"
	}
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Reset starts a new session on a brand-new board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.engine = NewEngine(g.rng, WithSpawnPolicy(spawnPolicy))
	g.tick = 0
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0

	if g.mode == ModeCampaign && g.startLevel > 0 && g.startLevel <= LevelCount() {
		g.levelIndex = g.startLevel - 1
	} else {
		g.levelIndex = 0
	}
	g.loadLevel()

	res := g.engine.Initialize()
	g.board = res.Board
	g.score = res.Score

	g.checkScreenSize()
}

// StartAtLevel makes this and every later Reset begin at level (1-based).
// 0 starts from the first level. Ignored in endless mode.
func (g *Game) StartAtLevel(level int) {
	g.startLevel = level
}

// Resize adapts to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// loadLevel sets the target for the current level.
func (g *Game) loadLevel() {
	if g.mode == ModeEndless {
		g.currentTarget = 0
		return
	}

	level := GetLevel(g.levelIndex)
	if level == nil {
		level = GetLevel(LevelCount() - 1)
	}
	g.currentTarget = level.Target
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// board (21 wide, 9 tall) + HUD
	minW := 25
	minH := 14
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	action := toAction(in.Direction())
	if action == ActionNone {
		return core.StepResult{State: g.State()}
	}

	g.processMove(action)
	return core.StepResult{State: g.State(), Moved: true}
}

// toAction maps a platform direction to an engine action.
func toAction(a core.Action) Action {
	switch a {
	case core.ActionUp:
		return ActionUp
	case core.ActionDown:
		return ActionDown
	case core.ActionLeft:
		return ActionLeft
	case core.ActionRight:
		return ActionRight
	default:
		return ActionNone
	}
}

// processMove applies one action through the engine.
func (g *Game) processMove(a Action) {
	res := g.engine.HandleMove(g.board, a)
	g.score = res.Score
	g.moves++

	if g.mode == ModeCampaign && g.currentTarget > 0 && g.score >= g.currentTarget {
		g.levelCleared = true
		g.levelClearTicks = 0
		return
	}

	if res.HasEnded {
		g.gameOver = true
	}
}

// advanceLevel moves to the next level, keeping the board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()

	// The move that cleared the level may also have filled the board.
	if HasGameEnded(g.board) {
		g.gameOver = true
	}
}

// Board returns the live board.
func (g *Game) Board() *Board {
	return g.board
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Moves:    g.moves,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

var (
	_ registry.Resizable = (*Game)(nil)
	_ registry.Leveled   = (*Game)(nil)
)
