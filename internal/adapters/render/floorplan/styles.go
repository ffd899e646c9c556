package floorplan

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/yuzawa-san/wawona/internal/domain"
)

type marker struct {
	glyph string
	style lipgloss.Style
}

type styles struct {
	title   lipgloss.Style
	frame   lipgloss.Style
	legend  lipgloss.Style
	markers map[domain.SpaceCategory]marker
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:  r.NewStyle().Bold(true),
		frame:  r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("241")),
		legend: r.NewStyle().Foreground(lipgloss.Color("245")),
		markers: map[domain.SpaceCategory]marker{
			domain.CategoryPreferred: {glyph: "★", style: r.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))},
			domain.CategoryAvailable: {glyph: "●", style: r.NewStyle().Foreground(lipgloss.Color("42"))},
			domain.CategoryFollowed:  {glyph: "◆", style: r.NewStyle().Foreground(lipgloss.Color("69"))},
			domain.CategoryTaken:     {glyph: "×", style: r.NewStyle().Foreground(lipgloss.Color("203"))},
		},
	}
}
