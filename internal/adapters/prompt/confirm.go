package prompt

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	message string
	value   bool
	keys    KeyMap
	styles  styles
	done    bool
	aborted bool
}

func newConfirmModel(message string, defaultValue bool, keys KeyMap) confirmModel {
	return confirmModel{message: message, value: defaultValue, keys: keys, styles: newStyles()}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Yes):
		m.value = true
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.No):
		m.value = false
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Submit):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	question := m.styles.question(m.message)
	switch {
	case m.aborted:
		return question + "\n"
	case m.done && m.value:
		return question + ": " + m.styles.answer.Render("Yes") + "\n"
	case m.done:
		return question + ": " + m.styles.answer.Render("No") + "\n"
	case m.value:
		return question + " " + m.styles.help.Render("(Y/n)") + " "
	default:
		return question + " " + m.styles.help.Render("(y/N)") + " "
	}
}
