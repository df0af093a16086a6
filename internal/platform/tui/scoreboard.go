package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	minWidthForStats = 84  // Below this the stats panel is dropped
	statsPanelWidth  = 24
	maxScores        = 100 // Rows loaded per mode
)

// ScoreReader provides the scoreboard data. *storage.Store satisfies it.
type ScoreReader interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// scoreOrder selects how the score table is sorted.
type scoreOrder int

const (
	orderByScore scoreOrder = iota
	orderByTile
)

func (o scoreOrder) String() string {
	if o == orderByTile {
		return "max tile"
	}
	return "score"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Sort     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Sort, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode, k.Sort},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev mode"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var sbTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229"))

var sbTabStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	Padding(0, 1)

var sbActiveTabStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57")).
	Padding(0, 1)

var sbPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var sbEmptyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	Italic(true).
	Padding(2, 4)

var sbHelpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241"))

// ScoreboardModel shows the stored runs of each mode.
type ScoreboardModel struct {
	modes      []registry.GameInfo
	modeCursor int
	store      ScoreReader
	scores     []storage.ScoreEntry
	stats      *storage.GameStats
	order      scoreOrder
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a new scoreboard model. store may be nil.
func NewScoreboardModel(store ScoreReader, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()

	return m
}

func (m ScoreboardModel) showStats() bool {
	return m.width >= minWidthForStats
}

// newTable sizes the table to the current window.
func (m ScoreboardModel) newTable() table.Model {
	dateWidth := 12
	if m.width >= 100 {
		dateWidth = 16
	}
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 10},
		{Title: "Max Tile", Width: 9},
		{Title: "Board", Width: 7},
		{Title: "Date", Width: dateWidth},
	}

	height := m.height - 10 // Title, tabs, borders, help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// currentMode returns the selected mode, or false if none are registered.
func (m ScoreboardModel) currentMode() (registry.GameInfo, bool) {
	if len(m.modes) == 0 {
		return registry.GameInfo{}, false
	}
	return m.modes[m.modeCursor], true
}

// reload fetches scores and stats for the selected mode.
func (m *ScoreboardModel) reload() {
	m.scores = nil
	m.stats = nil

	mode, ok := m.currentMode()
	if ok && m.store != nil {
		if scores, err := m.store.TopScores(mode.ID, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(mode.ID); err == nil {
			m.stats = stats
		}
	}
	m.refreshRows()
}

// refreshRows rebuilds the table rows in the current order.
// Ranks always follow the score order.
func (m *ScoreboardModel) refreshRows() {
	ranked := make([]int, len(m.scores))
	for i := range ranked {
		ranked[i] = i
	}
	if m.order == orderByTile {
		sort.SliceStable(ranked, func(a, b int) bool {
			return m.scores[ranked[a]].MaxTile > m.scores[ranked[b]].MaxTile
		})
	}

	rows := make([]table.Row, len(ranked))
	for i, idx := range ranked {
		s := m.scores[idx]
		rows[i] = table.Row{
			strconv.Itoa(idx + 1),
			strconv.Itoa(s.Score),
			strconv.FormatUint(uint64(s.MaxTile), 10),
			s.BoardSize(),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.modeCursor = (m.modeCursor + delta + len(m.modes)) % len(m.modes)
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

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
		case key.Matches(msg, m.keys.Sort):
			m.order = 1 - m.order
			m.refreshRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.refreshRows()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(sbTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	body := sbPanelStyle.Render(m.renderTable())
	if m.showStats() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.renderStats())
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n")

	b.WriteString(sbHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs draws one tab per mode, falling back to "< title >" when the
// tabs do not fit.
func (m ScoreboardModel) renderTabs() string {
	mode, ok := m.currentMode()
	if !ok {
		return ""
	}

	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.modeCursor {
			tabs[i] = sbActiveTabStyle.Render(g.Title)
		} else {
			tabs[i] = sbTabStyle.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", mode.Title)
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
}

func (m ScoreboardModel) renderTable() string {
	if len(m.scores) == 0 {
		return sbEmptyStyle.Render("No scores recorded yet.\nFinish a run to set a high score!")
	}
	out := m.table.View() + "\n" + sbHelpStyle.Render("sorted by "+m.order.String())
	if !m.showStats() {
		if line := m.statsLine(); line != "" {
			out += "\n" + line
		}
	}
	return out
}

// renderStats draws the per-mode summary panel.
func (m ScoreboardModel) renderStats() string {
	var b strings.Builder
	b.WriteString(sbTitleStyle.Render("Stats"))
	b.WriteString("\n\n")

	if m.stats == nil || m.stats.GamesCount == 0 {
		b.WriteString("No runs yet")
		return sbPanelStyle.Width(statsPanelWidth).Render(b.String())
	}

	tileStyle := colorStyles[t2048.TileColor(m.stats.BestTile)].Bold(true)
	fmt.Fprintf(&b, "Games:     %d\n", m.stats.GamesCount)
	fmt.Fprintf(&b, "Best:      %d\n", m.stats.HighScore)
	fmt.Fprintf(&b, "Average:   %.0f\n", m.stats.AvgScore)
	fmt.Fprintf(&b, "Best tile: %s\n", tileStyle.Render(strconv.FormatUint(uint64(m.stats.BestTile), 10)))
	if !m.stats.LastPlayed.IsZero() {
		fmt.Fprintf(&b, "Last:      %s", m.stats.LastPlayed.Format("Jan 02"))
	}
	return sbPanelStyle.Width(statsPanelWidth).Render(b.String())
}

// statsLine summarizes the selected mode on one line.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Games: %d  Best: %d  Avg: %.0f  Best tile: %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.BestTile)
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
func RunScoreboard(store ScoreReader, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

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
