package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/yuzawa-san/wawona/internal/ports"
)

const (
	maxVisibleOptions = 12
	ellipsis          = "…"
)

// listModel is a scrolling option list shared by the single and multiple choice prompts.
type listModel struct {
	message  string
	options  []ports.Option
	cursor   int
	offset   int
	width    int
	multi    bool
	selected map[int]bool
	keys     KeyMap
	styles   styles
	done     bool
	aborted  bool
}

func newSelectModel(p ports.SelectPrompt, keys KeyMap) listModel {
	m := listModel{
		message: p.Message,
		options: p.Options,
		keys:    keys,
		styles:  newStyles(),
	}
	for i, option := range p.Options {
		if option.Value == p.Default {
			m.cursor = i
			break
		}
	}
	m.scroll()
	return m
}

func newMultiSelectModel(p ports.MultiSelectPrompt, keys KeyMap) listModel {
	m := listModel{
		message:  p.Message,
		options:  p.Options,
		multi:    true,
		selected: map[int]bool{},
		keys:     keys,
		styles:   newStyles(),
	}
	defaults := make(map[string]bool, len(p.Defaults))
	for _, value := range p.Defaults {
		defaults[value] = true
	}
	for i, option := range p.Options {
		if defaults[option.Value] {
			m.selected[i] = true
		}
	}
	return m
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			if len(m.options) == 0 {
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			} else {
				m.cursor = len(m.options) - 1
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.options)-1 {
				m.cursor++
			} else {
				m.cursor = 0
			}
		case key.Matches(msg, m.keys.Home):
			m.cursor = 0
		case key.Matches(msg, m.keys.End):
			m.cursor = len(m.options) - 1
		case m.multi && key.Matches(msg, m.keys.Toggle):
			m.selected[m.cursor] = !m.selected[m.cursor]
		case m.multi && key.Matches(msg, m.keys.All):
			m.toggleAll()
		}
		m.scroll()
	}
	return m, nil
}

func (m *listModel) toggleAll() {
	all := true
	for i := range m.options {
		if !m.selected[i] {
			all = false
			break
		}
	}
	for i := range m.options {
		m.selected[i] = !all
	}
}

func (m *listModel) scroll() {
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+maxVisibleOptions {
		m.offset = m.cursor - maxVisibleOptions + 1
	}
}

// Value is the value under the cursor for single choice prompts.
func (m listModel) Value() string {
	if len(m.options) == 0 {
		return ""
	}
	return m.options[m.cursor].Value
}

// Values lists the checked values in option order for multiple choice prompts.
func (m listModel) Values() []string {
	values := make([]string, 0, len(m.selected))
	for i, option := range m.options {
		if m.selected[i] {
			values = append(values, option.Value)
		}
	}
	return values
}

func (m listModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.question(m.message))

	if m.aborted {
		b.WriteString("\n")
		return b.String()
	}
	if m.done {
		b.WriteString(": ")
		b.WriteString(m.styles.answer.Render(m.answerSummary()))
		b.WriteString("\n")
		return b.String()
	}

	if m.multi {
		b.WriteString("  " + m.styles.help.Render(helpLine(m.keys.Toggle, m.keys.All, m.keys.Submit, m.keys.Cancel)))
	} else {
		b.WriteString("  " + m.styles.help.Render(helpLine(m.keys.Submit, m.keys.Cancel)))
	}
	b.WriteString("\n")

	end := min(m.offset+maxVisibleOptions, len(m.options))
	if m.offset > 0 {
		b.WriteString(m.styles.moreHint.Render(fmt.Sprintf("  ↑ %d more", m.offset)) + "\n")
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderOption(i))
		b.WriteString("\n")
	}
	if end < len(m.options) {
		b.WriteString(m.styles.moreHint.Render(fmt.Sprintf("  ↓ %d more", len(m.options)-end)) + "\n")
	}
	return b.String()
}

func (m listModel) renderOption(i int) string {
	prefix := "  "
	if i == m.cursor {
		prefix = m.styles.cursor.Render("❯") + " "
	}
	if m.multi {
		if m.selected[i] {
			prefix += m.styles.checked.Render("◉") + " "
		} else {
			prefix += "◯ "
		}
	}

	label := m.options[i].Label
	if m.width > 0 {
		label = ansi.Truncate(label, max(m.width-ansi.StringWidth(prefix)-1, 1), ellipsis)
	}
	return prefix + m.styles.tone(m.options[i].Tone).Render(label)
}

func (m listModel) answerSummary() string {
	if !m.multi {
		return m.options[m.cursor].Label
	}
	labels := make([]string, 0, len(m.selected))
	for i, option := range m.options {
		if m.selected[i] {
			labels = append(labels, option.Label)
		}
	}
	if len(labels) == 0 {
		return "none"
	}
	return strings.Join(labels, ", ")
}
