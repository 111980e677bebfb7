package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/litebot/internal/ports"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrAborted = errors.New("prompt aborted")

const invalidAnswerText = "Please answer y or n."

type confirmModel struct {
	question string
	input    textinput.Model
	invalid  bool
	answered bool
	answer   bool
	aborted  bool

	questionStyle lipgloss.Style
	errorStyle    lipgloss.Style
}

func newConfirmModel(question string) confirmModel {
	input := textinput.New()
	input.Placeholder = "y/n"
	input.CharLimit = 8
	input.Width = 8
	input.Focus()

	return confirmModel{
		question:      question,
		input:         input,
		questionStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141")),
		errorStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

func (m confirmModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			answer, ok := parseAnswer(m.input.Value())
			if !ok {
				m.invalid = true
				m.input.Reset()
				return m, nil
			}
			m.answered = true
			m.answer = answer
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m confirmModel) View() string {
	if m.answered || m.aborted {
		return ""
	}

	view := fmt.Sprintf("%s %s", m.questionStyle.Render(m.question), m.input.View())
	if m.invalid {
		view += "\n" + m.errorStyle.Render(invalidAnswerText)
	}
	return view + "\n"
}

func parseAnswer(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes", "s", "sim":
		return true, true
	case "n", "no", "nao", "não":
		return false, true
	default:
		return false, false
	}
}

// Terminal asks yes/no questions on an interactive terminal.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

var _ ports.Prompter = (*Terminal)(nil)

func (t *Terminal) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	p := tea.NewProgram(
		newConfirmModel(question),
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, fmt.Errorf("run confirm prompt: %w", err)
	}

	result, ok := finalModel.(confirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected final prompt model type %T", finalModel)
	}
	if result.aborted || !result.answered {
		return false, ErrAborted
	}

	return result.answer, nil
}
