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

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	minWidthForSidebar = 80  // Below this the sizes are shown as tabs
	sidebarWidth       = 20
	maxScores          = 100 // Rows loaded per table
	dateLayout         = "Jan 02 15:04"
)

// boardSizes lists every board size that has its own table.
func boardSizes() []int {
	sizes := make([]int, 0, config.MaxBoardSize-config.MinBoardSize+1)
	for n := config.MinBoardSize; n <= config.MaxBoardSize; n++ {
		sizes = append(sizes, n)
	}
	return sizes
}

func sizeLabel(n int) string {
	return fmt.Sprintf("%dx%d", n, n)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll   key.Binding
	NextSize key.Binding
	PrevSize key.Binding
	Mode     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSize, k.PrevSize, k.Mode, k.Back}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scroll, k.NextSize, k.PrevSize},
		{k.Mode, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(
			key.WithKeys("up", "k", "down", "j"),
			key.WithHelp("↑↓/jk", "scroll"),
		),
		NextSize: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "larger board"),
		),
		PrevSize: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "smaller board"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "classic/endless"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best scores of one mode and board size.
type ScoreboardModel struct {
	store      *storage.Store // May be nil; every table is then empty
	sizes      []int
	sizeCursor int
	mode       t2048.Mode

	scores []storage.ScoreEntry
	stats  *storage.Stats

	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the classic table of size.
func NewScoreboardModel(store *storage.Store, size, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		sizes:  boardSizes(),
		mode:   t2048.ModeClassic,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}

	for i, n := range m.sizes {
		if n == size {
			m.sizeCursor = i
		}
	}

	m.table = m.newTable()
	m.load()
	return m
}

// currentKey returns the storage key of the table being shown.
func (m *ScoreboardModel) currentKey() string {
	id := t2048.ClassicID
	if m.mode == t2048.ModeEndless {
		id = t2048.EndlessID
	}
	return storage.ScoreKey(id, m.sizes[m.sizeCursor])
}

func (m *ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

// newTable builds an empty table sized to the window.
func (m *ScoreboardModel) newTable() table.Model {
	avail := m.width - 4
	if m.wide() {
		avail -= sidebarWidth + 3
	}

	dateW := 14
	if avail > 50 {
		dateW = min(avail-35, 20)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 12},
			{Title: "Max Tile", Width: 9},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorHighlight).
		Background(colorSelected).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the scores and stats of the current table.
func (m *ScoreboardModel) load() {
	m.scores = nil
	m.stats = nil

	if m.store != nil {
		id := m.currentKey()
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.MaxTile),
			s.CreatedAt.Format(dateLayout),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// shiftSize moves the size cursor by delta, wrapping at both ends.
func (m *ScoreboardModel) shiftSize(delta int) {
	n := len(m.sizes)
	m.sizeCursor = ((m.sizeCursor+delta)%n + n) % n
	m.load()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

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
		case key.Matches(msg, m.keys.NextSize):
			m.shiftSize(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevSize):
			m.shiftSize(-1)
			return m, nil
		case key.Matches(msg, m.keys.Mode):
			if m.mode == t2048.ModeClassic {
				m.mode = t2048.ModeEndless
			} else {
				m.mode = t2048.ModeClassic
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	mode := "Classic"
	if m.mode == t2048.ModeEndless {
		mode = "Endless"
	}
	title := fmt.Sprintf("HIGH SCORES - %s %s", mode, sizeLabel(m.sizes[m.sizeCursor]))

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	body := panelStyle.Render(m.tableView())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", body))
	} else {
		b.WriteString(centerText(m.tabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(body)
	}

	if m.stats != nil && m.stats.GamesCount > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(fmt.Sprintf("Games: %d  |  Avg: %.0f  |  Best tile: %d  |  Last played: %s",
			m.stats.GamesCount, m.stats.AvgScore, m.stats.BestTile, m.stats.LastPlayed.Format(dateLayout)), m.width))
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// sidebar lists the board sizes with the current one marked.
func (m ScoreboardModel) sidebar() string {
	lines := []string{"Board", strings.Repeat("-", sidebarWidth-4)}
	for i, n := range m.sizes {
		if i == m.sizeCursor {
			lines = append(lines, activeStyle.Render("> "+sizeLabel(n)))
		} else {
			lines = append(lines, "  "+sizeLabel(n))
		}
	}
	return panelStyle.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

// tabs lists the board sizes on one line, or only the current one if
// they do not fit.
func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.sizes))
	for i, n := range m.sizes {
		if i == m.sizeCursor {
			tabs[i] = tabStyle.Render(sizeLabel(n))
		} else {
			tabs[i] = mutedStyle.Render(" " + sizeLabel(n) + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", sizeLabel(m.sizes[m.sizeCursor]))
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	if len(m.scores) == 0 {
		return mutedStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen opened on the given board size.
// Returns true if the player wants to go back to the menu.
func RunScoreboard(store *storage.Store, size, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, size, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
