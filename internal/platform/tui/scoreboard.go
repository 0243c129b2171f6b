package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	minWidthForStats = 72  // Stats panel is shown beside the table from this width
	statsPanelWidth  = 24
	maxScores        = 100 // Rows loaded per mode
	dateFormat       = "Jan 02 15:04"
)

var (
	accentColor = lipgloss.Color("229")
	mutedColor  = lipgloss.Color("241")
	borderColor = lipgloss.Color("240")

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor).
			Background(lipgloss.Color("57")).Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Refresh  key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMode, k.NextMode, k.Refresh, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevMode, k.NextMode, k.Refresh},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		NextMode: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev mode")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// scoreMode is one tab of the scoreboard.
type scoreMode struct {
	id    string
	label string
}

// scoreModes lists every registered mode plus games finished over HTTP.
func scoreModes() []scoreMode {
	var modes []scoreMode
	for _, g := range registry.List() {
		modes = append(modes, scoreMode{id: g.ID, label: g.Title})
	}
	return append(modes, scoreMode{id: session.GameID, label: "HTTP API"})
}

// ScoreboardModel shows the best finished games per mode.
type ScoreboardModel struct {
	modes     []scoreMode
	current   int
	store     *storage.Store // nil shows empty tables
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  scoreModes(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForStats
}

func (m ScoreboardModel) newTable() table.Model {
	dateWidth := 14
	if avail := m.width - 6 - 6 - 11 - 8; !m.wide() && avail > dateWidth {
		dateWidth = min(avail, 20)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Best tile", Width: 10},
			{Title: "Moves", Width: 7},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(accentColor).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads scores and stats for the current mode.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.loadErr = nil, nil, nil

	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.current].id
		m.scores, m.loadErr = m.store.TopScores(id, maxScores)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(id)
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Moves),
			s.CreatedAt.Format(dateFormat),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// switchMode moves the tab cursor by delta, wrapping around.
func (m *ScoreboardModel) switchMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.modes)) % len(m.modes)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.switchMode(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.switchMode(-1)
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		rows := m.table.Rows()
		m.table = m.newTable()
		m.table.SetRows(rows)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("HIGH SCORES")
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderTabs()))
	b.WriteString("\n\n")

	body := boxStyle.Render(m.renderTable())
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.renderStats())
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(mutedColor).Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs draws one tab per mode. Narrow screens only show the current one.
func (m ScoreboardModel) renderTabs() string {
	if len(m.modes) == 0 {
		return ""
	}

	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		style := tabStyle
		if i == m.current {
			style = activeTabStyle
		}
		tabs[i] = style.Render(mode.label)
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", activeTabStyle.Render(m.modes[m.current].label))
	}
	return line
}

func (m ScoreboardModel) renderTable() string {
	empty := lipgloss.NewStyle().Foreground(mutedColor).Italic(true).Padding(1, 2)

	switch {
	case m.store == nil:
		return empty.Render("Scores are not being recorded.")
	case m.loadErr != nil:
		return empty.Render("Could not load scores.")
	case len(m.scores) == 0:
		return empty.Render("No games finished yet.\nReach a game over to get listed!")
	}
	return m.table.View()
}

// renderStats draws the aggregate panel for the current mode.
func (m ScoreboardModel) renderStats() string {
	label := lipgloss.NewStyle().Foreground(mutedColor)
	panel := boxStyle.Width(statsPanelWidth)

	if m.stats == nil || m.stats.GamesCount == 0 {
		return panel.Render(label.Render("No stats yet"))
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("Stats"),
		"",
		label.Render("Games      ") + strconv.Itoa(m.stats.GamesCount),
		label.Render("Best tile  ") + strconv.Itoa(m.stats.HighScore),
		label.Render("Average    ") + fmt.Sprintf("%.0f", m.stats.AvgScore),
		label.Render("Moves      ") + strconv.FormatInt(m.stats.TotalMoves, 10),
		label.Render("Last       ") + m.stats.LastPlayed.Format(dateFormat),
	}
	return panel.Render(strings.Join(lines, "\n"))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
