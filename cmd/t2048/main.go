// t2048 plays the 2048 sliding tile game in the terminal.
//
// Usage:
//
//	t2048 play               - Play a game
//	t2048 menu               - Start menu to pick a mode interactively
//	t2048 scores             - Show high scores for a board size
//	t2048 modes              - List available game modes
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.t2048/scores.db)
//	--config <path>      - Load configuration from a YAML file
//	--log-file <path>    - Write logs to a file (default: ~/.t2048/t2048.log)
//	--log-level <level>  - Log verbosity: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"

	// Import game modes to register them
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

// Shared state set up by the root command before any subcommand runs.
var (
	appConfig config.Config
	logger    = log.New(io.Discard)
	logFile   *os.File
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is a terminal version of the 2048 sliding tile game.

Slide the tiles with the arrow keys; equal tiles merge into their sum.
Reach 2048 to win the classic mode, or keep going in endless mode.

Available commands:
  play     - Play a game directly
  menu     - Interactive mode picker menu
  scores   - View high scores
  modes    - List game modes

Examples:
  t2048 play
  t2048 play --size 5 --mode endless
  t2048 menu
  t2048 scores --size 4`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(modesCmd)
}

// setup loads the configuration, applies flag overrides and opens the log.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	appConfig = cfg

	return openLog(cfg.Log)
}

// openLog points the package logger at the configured file.
// An empty file name discards logs.
func openLog(lc config.LogConfig) error {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", lc.Level, err)
	}

	var w io.Writer = io.Discard
	if lc.File != "" {
		path, err := config.ExpandPath(lc.File)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// runtimeConfig builds the runtime config for a screen of the given size.
func runtimeConfig(width, height, size int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		BoardSize: size,
		Seed:      flagSeed,
	}
}

// openStore opens the scores database. Failure is reported as a warning and
// the game continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", appConfig.Storage.DBPath, "error", err)
		return nil
	}
	return store
}
