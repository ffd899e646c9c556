package prompt

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yuzawa-san/wawona/internal/ports"
)

type styles struct {
	mark     lipgloss.Style
	message  lipgloss.Style
	answer   lipgloss.Style
	cursor   lipgloss.Style
	help     lipgloss.Style
	checked  lipgloss.Style
	moreHint lipgloss.Style
	tones    map[ports.OptionTone]lipgloss.Style
}

func newStyles() styles {
	return styles{
		mark:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		message:  lipgloss.NewStyle().Bold(true),
		answer:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		checked:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		moreHint: lipgloss.NewStyle().Faint(true),
		tones: map[ports.OptionTone]lipgloss.Style{
			ports.ToneDefault:   lipgloss.NewStyle(),
			ports.ToneHighlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
			ports.TonePositive:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
			ports.ToneFollowed:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
			ports.ToneNegative:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		},
	}
}

func (s styles) tone(tone ports.OptionTone) lipgloss.Style {
	if style, ok := s.tones[tone]; ok {
		return style
	}
	return s.tones[ports.ToneDefault]
}

func (s styles) question(message string) string {
	return s.mark.Render("?") + " " + s.message.Render(message)
}
