package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start t2048 in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	cfg := runtimeConfig(width, height, appConfig.Board.Size)

	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch res.Choice {
		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(store, cfg.BoardSize, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return nil
			}

		case tui.MenuChoicePlay:
			if appConfig.Board.Prompt {
				size, ok, err := tui.RunSizePrompt(cfg.BoardSize, cfg.ScreenW)
				if err != nil {
					return err
				}
				if !ok {
					continue // Back to menu
				}
				cfg.BoardSize = size
			}

			gameID, err := modeID(string(res.Mode))
			if err != nil {
				return err
			}

			run := cfg
			if flagSeed == 0 {
				run.Seed = time.Now().UnixNano()
			}
			if err := playTUI(gameID, run, store); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		default:
			return nil
		}
	}
}
