package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// footerHeight is the number of lines below the board for the status line
// and the full help view.
const footerHeight = 6

// boardInfo is implemented by modes that expose board details for storage.
type boardInfo interface {
	Size() int
	MaxTile() int
}

// Options configures a game model.
type Options struct {
	Store  *storage.Store // May be nil to play without persistence
	Logger *log.Logger    // May be nil to discard logs
	Theme  Theme
	// ScreenshotDir is where Ctrl+S writes the screen; defaults to ~/.t2048/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running a 2048 session.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	theme     Theme
	keys      *KeyMapper
	help      help.Model
	config    core.RuntimeConfig
	gameState core.GameState
	best      int
	status    string
	shotDir   string
	quitting  bool
	// scoreSaved is set once the current game's score has been stored.
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the given game and starts it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	theme := opts.Theme
	if len(theme.Tiles) == 0 {
		theme = DefaultTheme()
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".t2048", "screenshots")
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		store:   opts.Store,
		logger:  logger,
		theme:   theme,
		keys:    NewKeyMapper(),
		help:    help.New(),
		config:  cfg,
		shotDir: shotDir,
	}

	m.game.Reset(cfg)
	m.gameState = m.game.State()
	m.best = m.loadBest()

	m.logger.Info("session started", "mode", game.ID(), "size", cfg.BoardSize, "seed", cfg.Seed)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()

	switch {
	case key.Matches(msg, keys.Quit):
		m.saveScore("quit")
		m.quitting = true
		m.logger.Info("session ended", "mode", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit

	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keys.MapKeyToFrame(msg, &frame) || frame.Empty() {
		return m, nil
	}

	return m.step(frame)
}

// step applies one input frame and reacts to its outcome.
func (m Model) step(frame core.InputFrame) (tea.Model, tea.Cmd) {
	result := m.game.Step(frame)
	m.gameState = result.State

	switch result.Event {
	case core.EventMoved:
		m.logger.Debug("moved", "score", result.State.Score)
	case core.EventWon:
		m.logger.Info("game won", "score", result.State.Score)
		m.saveScore("won")
	case core.EventLost:
		m.logger.Info("game lost", "score", result.State.Score)
		m.saveScore("lost")
	case core.EventNewGame:
		m.logger.Info("new game", "mode", m.game.ID())
		m.scoreSaved = false
		m.status = ""
	}

	if m.gameState.Score > m.best {
		m.best = m.gameState.Score
	}

	return m, nil
}

// handleResize processes window resize events.
// The session is kept; only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// scoreKey returns the storage key for the current mode and board size.
func (m *Model) scoreKey() string {
	size := m.config.BoardSize
	if b, ok := m.game.(boardInfo); ok {
		size = b.Size()
	}
	return storage.ScoreKey(m.game.ID(), size)
}

// loadBest returns the stored high score for the current key.
func (m *Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.scoreKey())
	if err != nil {
		m.logger.Warn("cannot load high score", "error", err)
		return 0
	}
	return best
}

// saveScore stores the current score once per game.
func (m *Model) saveScore(reason string) {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true

	if m.store == nil {
		return
	}

	maxTile := 0
	if b, ok := m.game.(boardInfo); ok {
		maxTile = b.MaxTile()
	}

	id := m.scoreKey()
	if _, err := m.store.SaveScore(id, m.gameState.Score, maxTile); err != nil {
		m.logger.Warn("cannot save score", "key", id, "error", err)
		m.status = "Score not saved"
		return
	}
	m.logger.Info("score saved", "key", id, "score", m.gameState.Score, "reason", reason)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", m.shotDir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.status = "Saved " + filepath.Base(path)
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	status := fmt.Sprintf("Best: %d", m.best)
	if m.status != "" {
		status += "  " + m.status
	}

	return m.theme.RenderScreen(m.screen) + "\n" +
		mutedStyle.Render(status) + "\n" +
		m.help.View(m.keys.Keys())
}

// State returns the current game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
