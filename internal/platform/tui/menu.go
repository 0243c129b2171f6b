package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Mode IDs as registered by the t2048 package.
const (
	campaignID = "2048"
	endlessID  = "2048_endless"
)

// Selection holds what the player picked in the menu.
type Selection struct {
	GameID string
	Level  int // 0 = start from beginning, otherwise 1-based campaign level
}

// menuEntry is one line of the main menu.
type menuEntry int

const (
	entryCampaign menuEntry = iota
	entryEndless
	entryLevels
	entryScores
	entryCount
)

// MenuModel lets users choose the mode and starting level.
type MenuModel struct {
	cursor         int
	levelCursor    int
	inLevelSelect  bool
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	selected       *Selection
	openScoreboard bool
	quitting       bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelect(action)
		}
		return m.handleMain(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleMain(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < int(entryCount)-1 {
			m.cursor++
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	case MenuActionSelect:
		switch menuEntry(m.cursor) {
		case entryCampaign:
			m.selected = &Selection{GameID: campaignID}
			return m, tea.Quit
		case entryEndless:
			m.selected = &Selection{GameID: endlessID}
			return m, tea.Quit
		case entryLevels:
			m.inLevelSelect = true
			m.levelCursor = 0
		case entryScores:
			m.openScoreboard = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < t2048.LevelCount()-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.selected = &Selection{GameID: campaignID, Level: m.levelCursor + 1}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewMain()
}

func (m MenuModel) viewMain() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("2 0 4 8", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	entries := []string{
		fmt.Sprintf("Campaign (%d levels)", t2048.LevelCount()),
		"Endless Mode",
		"Select Level...",
		"High Scores",
	}
	for i, e := range entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+e, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	targets := t2048.LevelTargets()
	for i, name := range t2048.LevelNames() {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%2d. %s (Target: %d)", cursor, i+1, name, targets[i])
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       *Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Selection = m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}
