package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// Theme holds the board and tile colors used to render a screen.
type Theme struct {
	Board     lipgloss.Color
	TextDark  lipgloss.Color
	TextLight lipgloss.Color
	Tiles     []lipgloss.Color
}

// ThemeFromConfig builds a theme from validated configuration.
func ThemeFromConfig(tc config.ThemeConfig) Theme {
	tiles := make([]lipgloss.Color, len(tc.Tiles))
	for i, c := range tc.Tiles {
		tiles[i] = lipgloss.Color(c)
	}
	return Theme{
		Board:     lipgloss.Color(tc.Board),
		TextDark:  lipgloss.Color(tc.TextDark),
		TextLight: lipgloss.Color(tc.TextLight),
		Tiles:     tiles,
	}
}

// DefaultTheme returns the theme of the default configuration.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.DefaultConfig().Theme)
}

// Style returns the lipgloss style for a screen color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if c == core.ColorBoard {
		return lipgloss.NewStyle().Background(t.Board).Foreground(t.TextLight)
	}

	if idx, light, ok := c.Tile(); ok && len(t.Tiles) > 0 {
		fg := t.TextDark
		if light {
			fg = t.TextLight
		}
		return lipgloss.NewStyle().
			Background(t.Tiles[min(idx, len(t.Tiles)-1)]).
			Foreground(fg).
			Bold(true)
	}

	return lipgloss.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (t Theme) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(t.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the default theme.
func RenderScreen(s *core.Screen) string {
	return DefaultTheme().RenderScreen(s)
}
