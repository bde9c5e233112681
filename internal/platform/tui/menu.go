package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// MenuItem is one entry of the main menu.
type MenuItem struct {
	Label  string
	Desc   string
	Choice MenuChoice
	Mode   t2048.Mode // Set for play entries
}

// DefaultMenuItems returns the entries of the main menu.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Label: "Play", Desc: "Reach the 2048 tile to win", Choice: MenuChoicePlay, Mode: t2048.ModeClassic},
		{Label: "Play Endless", Desc: "Keep merging until the board locks up", Choice: MenuChoicePlay, Mode: t2048.ModeEndless},
		{Label: "High Scores", Desc: "Best games per mode and board size", Choice: MenuChoiceScores},
		{Label: "Quit", Choice: MenuChoiceQuit},
	}
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	config   core.RuntimeConfig // Tracks the window size between screens
	keys     *KeyMapper
	selected *MenuItem
	quitting bool
}

func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:  DefaultMenuItems(),
		config: cfg,
		keys:   NewKeyMapper(),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)

	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)

	case MenuActionSelect:
		item := m.items[m.cursor]
		m.selected = &item
		m.quitting = item.Choice == MenuChoiceQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	w := m.config.ScreenW
	lines := []string{
		"",
		titleStyle.Render("  2 0 4 8  "),
		"",
		"Join the tiles, get to 2048!",
		"",
	}
	for i, item := range m.items {
		if i == m.cursor {
			lines = append(lines, activeStyle.Render("> "+item.Label))
		} else {
			lines = append(lines, "  "+item.Label)
		}
	}
	lines = append(lines, "", mutedStyle.Render(m.items[m.cursor].Desc), "",
		mutedStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"))

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(centerText(line, w))
		b.WriteString("\n")
	}
	return b.String()
}

// Selected returns the chosen entry, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the menu ended without a play or scores choice.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config with the latest window size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Mode   t2048.Mode
	Config core.RuntimeConfig
}

// RunMenu runs the menu until the player picks an entry.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok || m.Selected() == nil {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, nil
	}
	return MenuResult{
		Choice: m.Selected().Choice,
		Mode:   m.Selected().Mode,
		Config: m.Config(),
	}, nil
}
