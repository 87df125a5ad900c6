package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptModel reads a single line of input.
type PromptModel struct {
	input      textinput.Model
	keyMapper  *KeyMapper
	directions bool // Arrow keys submit a move immediately
	value      string
	done       bool
	cancelled  bool
}

// NewPromptModel creates a prompt. When directions is set, arrow keys answer
// with the matching move name.
func NewPromptModel(prompt string, directions bool) PromptModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.CharLimit = 32
	ti.Width = 24
	if directions {
		ti.Placeholder = "arrow keys or up/down/left/right"
	} else {
		ti.Placeholder = "(row, col) value"
	}
	ti.Focus()

	return PromptModel{
		input:      ti,
		keyMapper:  NewKeyMapper(),
		directions: directions,
	}
}

// Init initializes the model.
func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		}

		if m.directions {
			if a, ok := m.keyMapper.MapKeyToDirection(msg); ok {
				m.value = a.String()
				m.done = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m PromptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n",
		m.input.View(),
		boardTheme.MenuDescription.Render("Enter: Submit  |  Esc: Stop"),
	)
}

// Value returns the submitted line and whether one was submitted.
func (m PromptModel) Value() (string, bool) {
	return m.value, m.done
}

// IsCancelled returns true if the user stopped input.
func (m PromptModel) IsCancelled() bool {
	return m.cancelled
}

// PromptSource reads each line through an inline Bubble Tea prompt.
// Cancelling the prompt reports io.EOF.
type PromptSource struct {
	in         io.Reader
	out        io.Writer
	directions bool
}

// NewPromptSource creates a prompt-backed line source. Nil in or out use the
// process terminal.
func NewPromptSource(in io.Reader, out io.Writer, directions bool) *PromptSource {
	return &PromptSource{in: in, out: out, directions: directions}
}

// ReadLine runs one prompt program and returns the submitted line.
func (s *PromptSource) ReadLine(prompt string) (string, error) {
	var opts []tea.ProgramOption
	if s.in != nil {
		opts = append(opts, tea.WithInput(s.in))
	}
	if s.out != nil {
		opts = append(opts, tea.WithOutput(s.out))
	}

	p := tea.NewProgram(NewPromptModel(prompt, s.directions), opts...)
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("tui: prompt: %w", err)
	}

	m, ok := finalModel.(PromptModel)
	if !ok || m.IsCancelled() {
		return "", io.EOF
	}

	line, _ := m.Value()
	return line, nil
}
