package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// CampaignSelection holds the user's choice from the campaign menu.
type CampaignSelection struct {
	Level int // 0 = start from beginning, 1-10 = specific level
}

// campaignOptions are the entries of the first campaign screen.
var campaignOptions = []string{
	"Start Campaign",
	"Select Level...",
}

// CampaignMenuModel lets users start the campaign or pick a starting level.
type CampaignMenuModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     CampaignSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewCampaignMenuModel creates a new campaign menu model.
func NewCampaignMenuModel(width, height int) CampaignMenuModel {
	return CampaignMenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m CampaignMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m CampaignMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m CampaignMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleStartKey(action)
}

func (m CampaignMenuModel) handleStartKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(campaignOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor == 0 {
			m.choosing = false
			m.selection = CampaignSelection{Level: 0}
			return m, tea.Quit
		}
		m.inLevelSelect = true
		m.levelCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m CampaignMenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	levelCount := t2048.LevelCount()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < levelCount-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = CampaignSelection{
			Level: m.levelCursor + 1, // 1-indexed
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the start screen or the level list.
func (m CampaignMenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewStart()
}

func (m CampaignMenuModel) viewStart() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("C A M P A I G N", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%d levels, one board", t2048.LevelCount()), m.width))
	b.WriteString("\n\n")

	for i, opt := range campaignOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m CampaignMenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	levelNames := t2048.LevelNames()
	levelTargets := t2048.LevelTargets()

	for i, name := range levelNames {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %-18s (Target: %d)", cursor, i+1, name, levelTargets[i])
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m CampaignMenuModel) Selected() *CampaignSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m CampaignMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m CampaignMenuModel) WantsBack() bool {
	return m.back
}

// RunCampaignMenu runs the campaign menu and returns the selection.
// Returns nil if the user went back or quit.
func RunCampaignMenu(cfg core.RuntimeConfig) (*CampaignSelection, error) {
	model := NewCampaignMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(CampaignMenuModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
