package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/plain"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagSize  int
	flagMode  string
	flagPlain bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  R                 - New game
  Enter             - New game after a win or loss
  Ctrl+S            - Save a screenshot
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Modes:
  classic  - The game is won when a 2048 tile appears
  endless  - Play on past 2048 until no move is left

When stdout is not a terminal, or with --plain, the game reads one
command per line (w/a/s/d, r, q) and prints the board after each.

Examples:
  t2048 play
  t2048 play --size 5
  t2048 play --mode endless --seed 42
  t2048 play --plain < moves.txt`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size N (3-10, default from config)")
	playCmd.Flags().StringVar(&flagMode, "mode", string(t2048.ModeClassic), "Game mode: classic, endless")
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Line-oriented play without a full screen UI")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("size") {
		if err := config.ValidateBoardSize(flagSize); err != nil {
			return fmt.Errorf("--size %d: %w", flagSize, err)
		}
	}

	gameID, err := modeID(flagMode)
	if err != nil {
		return err
	}

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return playPlain(gameID, boardSize(cmd))
	}

	width, height := terminalSize()
	size := boardSize(cmd)
	if appConfig.Board.Prompt && !cmd.Flags().Changed("size") {
		chosen, ok, err := tui.RunSizePrompt(size, width)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		size = chosen
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return playTUI(gameID, runtimeConfig(width, height, size), store)
}

// modeID maps a --mode name to the ID its game is registered under.
func modeID(mode string) (string, error) {
	id, ok := t2048.ModeID(t2048.Mode(mode))
	if !ok || !registry.Exists(id) {
		return "", fmt.Errorf("unknown mode %q (want classic or endless)", mode)
	}
	return id, nil
}

// boardSize returns the --size flag if given, else the configured size.
func boardSize(cmd *cobra.Command) int {
	if cmd.Flags().Changed("size") {
		return flagSize
	}
	return appConfig.Board.Size
}

// terminalSize returns the size of the terminal on stdout, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// boardInfo is implemented by modes that report their board for scoring.
type boardInfo interface {
	Size() int
	MaxTile() int
}

// playTUI runs one full screen session of the registered mode gameID.
func playTUI(gameID string, cfg core.RuntimeConfig, store *storage.Store) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Store:  store,
		Logger: logger,
		Theme:  tui.ThemeFromConfig(appConfig.Theme),
	}
	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// playPlain runs the line-oriented driver on stdin and stdout.
func playPlain(gameID string, size int) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	cfg := core.DefaultConfig()
	cfg.BoardSize = size
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	d := plain.New(game, os.Stdin, os.Stdout, cfg.ScreenW, cfg.ScreenH, logger)
	d.OnFinish = func(state core.GameState) {
		if store == nil {
			return
		}
		b, ok := game.(boardInfo)
		if !ok {
			return
		}
		id := storage.ScoreKey(game.ID(), b.Size())
		if _, err := store.SaveScore(id, state.Score, b.MaxTile()); err != nil {
			logger.Warn("cannot save score", "key", id, "error", err)
			return
		}
		logger.Info("score saved", "key", id, "score", state.Score)
	}

	logger.Info("plain session started", "mode", gameID, "size", size, "seed", cfg.Seed)
	res, err := d.Run()
	if err != nil {
		return err
	}
	logger.Info("plain session ended", "moves", res.Moves, "finished", res.Finished, "score", res.State.Score)

	fmt.Printf("Final score: %d\n", res.State.Score)
	return nil
}
