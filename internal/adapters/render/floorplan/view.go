package floorplan

import (
	"fmt"
	"strings"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

var legendOrder = []domain.SpaceCategory{
	domain.CategoryPreferred,
	domain.CategoryAvailable,
	domain.CategoryFollowed,
	domain.CategoryTaken,
}

func renderCanvas(plan ports.FloorPlan, c canvas, s styles) string {
	lines := make([]string, 0, len(c.cells))
	for _, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			if !cl.set {
				b.WriteByte(' ')
				continue
			}
			m := s.markers[cl.category]
			b.WriteString(m.style.Render(m.glyph))
		}
		lines = append(lines, b.String())
	}

	legend := make([]string, 0, len(legendOrder))
	for _, category := range legendOrder {
		m := s.markers[category]
		legend = append(legend, fmt.Sprintf("%s %s (%d)", m.style.Render(m.glyph), s.legend.Render(category.String()), c.counts[category]))
	}

	return strings.Join([]string{
		s.title.Render(plan.Floor.Name),
		s.frame.Render(strings.Join(lines, "\n")),
		strings.Join(legend, "  "),
	}, "\n")
}
