// Package t2048 drives a 2048 session on top of the board engine and draws
// it into a core.Screen. It registers the classic and endless modes.
package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// Mode IDs as registered with the registry.
const (
	ClassicID = "2048"
	EndlessID = "2048_endless"
)

// notice is the message shown over the board after a finished game.
type notice int

const (
	noticeNone notice = iota
	noticeWon
	noticeLost
)

// Game implements one 2048 session.
type Game struct {
	mode  Mode
	board *engine.Board
	tick  uint64 // Steps applied since Reset
	games int    // Games started since Reset

	notice notice
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ModeID returns the registry ID for the given mode name.
// The second result is false if the mode is unknown.
func ModeID(mode Mode) (string, bool) {
	switch mode {
	case ModeClassic:
		return ClassicID, true
	case ModeEndless:
		return EndlessID, true
	default:
		return "", false
	}
}

func init() {
	registry.Register(ClassicID, func() registry.Game {
		return New()
	})
	registry.Register(EndlessID, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return EndlessID
	}
	return ClassicID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset builds a fresh board of cfg.BoardSize and starts a new game on it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	size := cfg.BoardSize
	if size < 1 {
		size = core.DefaultBoardSize
	}

	g.board = engine.New(size, engine.NewRandSource(cfg.Seed))
	g.tick = 0
	g.games = 0
	g.newGame()
}

// newGame clears the board and spawns the two starting tiles.
func (g *Game) newGame() {
	g.board.NewGame()
	g.notice = noticeNone
	g.games++
}

// Step applies one input frame.
//
// A move that changes the board is followed by exactly one random tile and
// then the terminal checks. While a notice is showing, moves are ignored and
// Confirm or Restart starts the next game.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.newGame()
		return g.result(core.EventNewGame)
	}

	if g.notice != noticeNone {
		if in.Has(core.ActionConfirm) {
			g.newGame()
			return g.result(core.EventNewGame)
		}
		return g.result(core.EventNone)
	}

	dir, ok := direction(in)
	if !ok {
		return g.result(core.EventNone)
	}

	if !g.board.Move(dir) {
		return g.result(core.EventNone)
	}
	g.board.AddRandomTile()

	switch {
	case g.mode == ModeClassic && g.board.HasWinningTile():
		g.notice = noticeWon
		return g.result(core.EventWon)
	case !g.board.CanMove():
		g.notice = noticeLost
		return g.result(core.EventLost)
	}

	return g.result(core.EventMoved)
}

// direction maps the first directional action in the frame to a move.
func direction(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.Up, true
	case in.Has(core.ActionDown):
		return engine.Down, true
	case in.Has(core.ActionLeft):
		return engine.Left, true
	case in.Has(core.ActionRight):
		return engine.Right, true
	}
	return 0, false
}

func (g *Game) result(ev core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Event: ev}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.board.Score(),
		GameOver: g.notice != noticeNone,
		Won:      g.notice == noticeWon,
	}
}

// Size returns the board dimension.
func (g *Game) Size() int {
	if g.board == nil {
		return 0
	}
	return g.board.Size()
}

// MaxTile returns the highest tile on the board.
func (g *Game) MaxTile() int {
	if g.board == nil {
		return 0
	}
	return g.board.MaxTile()
}
