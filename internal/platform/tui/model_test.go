package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func update[M tea.Model](t *testing.T, m M, msg tea.Msg) (M, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(M)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return got, cmd
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	game, err := registry.Create("2048_endless")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	m := NewModel(game, nil, testRuntime())
	m.Init()
	return m
}

func TestModelKeyAndTickMoves(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd := update(t, m, TickMsg{})

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.gameState.Moves != 1 {
		t.Errorf("Moves = %d, want 1", m.gameState.Moves)
	}
	if m.inputFrame.Direction() != core.ActionNone {
		t.Error("input should be cleared after a tick")
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m := newTestModel(t)
	game := m.game.(*t2048.Game)
	before := game.Board().Values()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if game.Board().Values() != before {
		t.Error("resize should not restart the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))

	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelBackOnlyWhenPaused(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if !m.BackToMenu() {
		t.Error("back should return to menu while paused")
	}
}

func TestModelViewShowsBoard(t *testing.T) {
	m := newTestModel(t)

	if view := m.View(); !strings.Contains(view, "2048") {
		t.Errorf("view should contain the title, got:\n%s", view)
	}
}
