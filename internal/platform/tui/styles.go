package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors of the screens around the board. The board itself uses Theme.
var (
	colorAccent    = lipgloss.Color("214")
	colorHighlight = lipgloss.Color("229")
	colorSelected  = lipgloss.Color("57")
	colorMuted     = lipgloss.Color("241")
	colorBorder    = lipgloss.Color("240")
	colorError     = lipgloss.Color("203")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHighlight)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	tabStyle    = activeStyle.Background(colorSelected).Padding(0, 1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
)

// centerText pads text on the left so it sits in the middle of width cells.
// Width is measured in cells, so styled text is centered correctly.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
