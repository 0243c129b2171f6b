package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyDirections(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey('w'), core.ActionUp},
		{"a", runeKey('a'), core.ActionLeft},
		{"s", runeKey('s'), core.ActionDown},
		{"d", runeKey('d'), core.ActionRight},
		{"k", runeKey('k'), core.ActionUp},
		{"h", runeKey('h'), core.ActionLeft},
		{"j", runeKey('j'), core.ActionDown},
		{"l", runeKey('l'), core.ActionRight},
		{"pause", runeKey('p'), core.ActionPause},
		{"restart", runeKey('r'), core.ActionRestart},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want {
				t.Errorf("MapKey(%q) = %s, want %s", tt.msg.String(), got, tt.want)
			}
			if quit {
				t.Errorf("MapKey(%q) should not quit", tt.msg.String())
			}
		})
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		if !km.MapKeyToFrame(msg, &frame) {
			t.Errorf("%q should quit", msg.String())
		}
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not be queued as a game action")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, want %d", tt.msg.String(), got, tt.want)
		}
	}
}
