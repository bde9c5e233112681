// Package config provides YAML-based configuration loading and validation
// for the 2048 terminal game.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Board size limits accepted at the boundary. The engine itself accepts any
// size of at least one.
const (
	MinBoardSize = 3
	MaxBoardSize = 10
)

var (
	// ErrNotInteger is returned when a board size is not a whole number.
	ErrNotInteger = errors.New("board size is not an integer")
	// ErrInvalidBoardSize is returned when a board size is outside [MinBoardSize, MaxBoardSize].
	ErrInvalidBoardSize = fmt.Errorf("board size must be between %d and %d", MinBoardSize, MaxBoardSize)
)

// Config contains all configuration for the game.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Theme   ThemeConfig   `yaml:"theme"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the board dimension and how it is chosen.
type BoardConfig struct {
	Size   int  `yaml:"size"`
	Prompt bool `yaml:"prompt"` // Ask for the size interactively
}

// ThemeConfig defines the colors used to draw the board.
type ThemeConfig struct {
	Board     string   `yaml:"board"`
	TextDark  string   `yaml:"text_dark"`
	TextLight string   `yaml:"text_light"`
	Tiles     []string `yaml:"tiles"`
}

// StorageConfig defines where high scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines the log destination and verbosity.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks the configuration for values the game cannot use.
func (c Config) Validate() error {
	if err := ValidateBoardSize(c.Board.Size); err != nil {
		return fmt.Errorf("config: board.size %d: %w", c.Board.Size, err)
	}

	if len(c.Theme.Tiles) != core.TilePaletteSize {
		return fmt.Errorf("config: theme.tiles has %d entries, want %d", len(c.Theme.Tiles), core.TilePaletteSize)
	}

	colors := append([]string{c.Theme.Board, c.Theme.TextDark, c.Theme.TextLight}, c.Theme.Tiles...)
	for _, col := range colors {
		if !hexColor.MatchString(col) {
			return fmt.Errorf("config: invalid color %q, want #RRGGBB", col)
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}

	return nil
}

// ValidateBoardSize returns ErrInvalidBoardSize if n is outside the accepted range.
func ValidateBoardSize(n int) error {
	if n < MinBoardSize || n > MaxBoardSize {
		return ErrInvalidBoardSize
	}
	return nil
}

// ParseBoardSize parses user input as a board size.
// Errors are ErrNotInteger or ErrInvalidBoardSize.
func ParseBoardSize(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrNotInteger
	}
	if err := ValidateBoardSize(n); err != nil {
		return 0, err
	}
	return n, nil
}
