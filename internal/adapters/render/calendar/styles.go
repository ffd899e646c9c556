package calendar

import "github.com/charmbracelet/lipgloss"

type styles struct {
	border lipgloss.Style
	header lipgloss.Style
	today  lipgloss.Style
	name   lipgloss.Style
	you    lipgloss.Style
	cell   lipgloss.Style
	space  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		border: r.NewStyle().Foreground(lipgloss.Color("241")),
		header: r.NewStyle().Bold(true).Padding(0, 1),
		today:  r.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("69")),
		name:   r.NewStyle().Padding(0, 1),
		you:    r.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("39")),
		cell:   r.NewStyle().Padding(0, 1).Align(lipgloss.Center),
		space:  r.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("252")),
	}
}
