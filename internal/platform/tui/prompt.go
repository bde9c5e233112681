package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// Messages shown when the entered board size is rejected.
const (
	msgNotInteger  = "Please enter a valid integer."
	msgOutOfBounds = "Enter a number between 3 and 10."
)

// SizePromptModel asks for the board size until a valid one is entered or
// the prompt is cancelled.
type SizePromptModel struct {
	input     textinput.Model
	width     int
	errMsg    string
	size      int
	done      bool
	cancelled bool
}

// NewSizePromptModel creates a prompt with initial as the suggested size.
func NewSizePromptModel(initial, width int) SizePromptModel {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("%d", initial)
	ti.CharLimit = 3
	ti.Width = 6
	ti.Prompt = "> "
	ti.Focus()

	return SizePromptModel{
		input: ti,
		width: width,
	}
}

// Init starts the cursor blinking.
func (m SizePromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m SizePromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			value := m.input.Value()
			if strings.TrimSpace(value) == "" {
				value = m.input.Placeholder
			}
			size, err := config.ParseBoardSize(value)
			if err != nil {
				m.errMsg = promptMessage(err)
				m.input.Reset()
				return m, nil
			}
			m.size = size
			m.done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// promptMessage maps a board size error to the message shown to the player.
func promptMessage(err error) string {
	if errors.Is(err, config.ErrInvalidBoardSize) {
		return msgOutOfBounds
	}
	return msgNotInteger
}

// View renders the prompt.
func (m SizePromptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Board size"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Enter the board size (%d-%d):", config.MinBoardSize, config.MaxBoardSize), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n\n")
	if m.errMsg != "" {
		b.WriteString(centerText(errorStyle.Render(m.errMsg), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(mutedStyle.Render("Enter: confirm  |  Esc: cancel"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Size returns the accepted size and whether one was accepted.
func (m SizePromptModel) Size() (int, bool) {
	return m.size, m.done
}

// RunSizePrompt asks for a board size.
// Returns ok=false if the player cancelled.
func RunSizePrompt(initial, width int) (size int, ok bool, err error) {
	p := tea.NewProgram(NewSizePromptModel(initial, width))

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, isPrompt := finalModel.(SizePromptModel)
	if !isPrompt {
		return 0, false, nil
	}
	size, ok = m.Size()
	return size, ok, nil
}
