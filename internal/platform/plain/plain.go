// Package plain runs a game over line-oriented text streams. It is used when
// stdout is not a terminal and for end-to-end tests.
package plain

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Prompt is printed before each command is read.
const Prompt = "move (w/a/s/d, r restart, q quit): "

// commands maps input lines to game actions.
var commands = map[string]core.Action{
	"w":     core.ActionUp,
	"a":     core.ActionLeft,
	"s":     core.ActionDown,
	"d":     core.ActionRight,
	"up":    core.ActionUp,
	"left":  core.ActionLeft,
	"down":  core.ActionDown,
	"right": core.ActionRight,
	"r":     core.ActionRestart,
	"":      core.ActionConfirm,
	"q":     core.ActionQuit,
	"quit":  core.ActionQuit,
}

// Result summarizes a finished run.
type Result struct {
	Moves    int  // Commands that changed the board
	Finished int  // Games that ended in a win or loss
	Quit     bool // Whether the run ended on a quit command rather than end of input
	State    core.GameState
}

// Driver plays a game by reading commands from in and printing the screen to out.
type Driver struct {
	game   registry.Game
	screen *core.Screen
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger

	// OnFinish is called with the final state of every game that ends in a
	// win or loss, and of the game in progress on quit if it has a score.
	OnFinish func(core.GameState)
}

// New creates a driver. The game must already be Reset.
func New(game registry.Game, in io.Reader, out io.Writer, width, height int, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		game:   game,
		screen: core.NewScreen(width, height),
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run reads commands until quit or end of input.
func (d *Driver) Run() (Result, error) {
	var res Result
	finishedShown := false

	if err := d.draw(); err != nil {
		return res, err
	}

	for {
		if _, err := io.WriteString(d.out, Prompt); err != nil {
			return res, fmt.Errorf("plain: write prompt: %w", err)
		}
		if !d.in.Scan() {
			break
		}

		cmd := strings.ToLower(strings.TrimSpace(d.in.Text()))
		action, ok := commands[cmd]
		if !ok {
			fmt.Fprintf(d.out, "unknown command %q\n", cmd)
			continue
		}

		if action == core.ActionQuit {
			res.Quit = true
			break
		}

		step := d.game.Step(core.FrameOf(action))
		res.State = step.State

		switch step.Event {
		case core.EventMoved:
			res.Moves++
		case core.EventWon, core.EventLost:
			res.Moves++
			res.Finished++
			finishedShown = true
			d.logger.Info("game finished", "event", step.Event, "score", step.State.Score)
			d.finish(step.State)
		case core.EventNewGame:
			finishedShown = false
			d.logger.Info("new game")
		}

		if err := d.draw(); err != nil {
			return res, err
		}
	}

	if err := d.in.Err(); err != nil {
		return res, fmt.Errorf("plain: read input: %w", err)
	}

	res.State = d.game.State()
	if !finishedShown && res.State.Score > 0 {
		d.finish(res.State)
	}
	return res, nil
}

func (d *Driver) finish(state core.GameState) {
	if d.OnFinish != nil {
		d.OnFinish(state)
	}
}

// sizer is implemented by games whose minimum screen depends on their state.
type sizer interface {
	MinScreenSize() (w, h int)
}

// draw renders the game and writes the non-blank rows. The screen grows to
// the game's minimum size since there is no terminal to fit.
func (d *Driver) draw() error {
	if s, ok := d.game.(sizer); ok {
		w, h := s.MinScreenSize()
		d.screen.Resize(max(w, d.screen.Width()), max(h, d.screen.Height()))
	}
	d.game.Render(d.screen)

	var b strings.Builder
	for y := range d.screen.Height() {
		row := strings.TrimRight(d.screen.Row(y), " ")
		if row == "" {
			continue
		}
		b.WriteString(row)
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(d.out, b.String()); err != nil {
		return fmt.Errorf("plain: write board: %w", err)
	}
	return nil
}
