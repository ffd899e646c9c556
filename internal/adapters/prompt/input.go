package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	message  string
	input    textinput.Model
	secret   bool
	keys     KeyMap
	styles   styles
	done     bool
	aborted  bool
	fallback string
}

func newInputModel(message, defaultValue string, secret bool, keys KeyMap) inputModel {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = defaultValue
	if secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '•'
		input.Placeholder = ""
	}
	input.Focus()

	return inputModel{
		message:  message,
		input:    input,
		secret:   secret,
		keys:     keys,
		styles:   newStyles(),
		fallback: defaultValue,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Value is the entered text, or the default when nothing was typed.
func (m inputModel) Value() string {
	if m.secret {
		return m.input.Value()
	}
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return m.fallback
	}
	return value
}

func (m inputModel) View() string {
	if m.aborted {
		return m.styles.question(m.message) + "\n"
	}
	if m.done {
		answer := m.Value()
		if m.secret {
			answer = strings.Repeat("•", len([]rune(answer)))
		}
		return m.styles.question(m.message) + ": " + m.styles.answer.Render(answer) + "\n"
	}
	return m.styles.question(m.message) + ": " + m.input.View() + "\n"
}
