package floorplan

import (
	"math"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

type cell struct {
	set      bool
	category domain.SpaceCategory
}

type canvas struct {
	cells  [][]cell
	counts map[domain.SpaceCategory]int
}

// layout scales the bounding box of all plotted spaces onto a grid of the given
// width. Spaces without coordinates are skipped.
func layout(markers []ports.PlanMarker, columns int) (canvas, error) {
	var plotted []ports.PlanMarker
	for _, m := range markers {
		if m.Space.Coordinates != nil {
			plotted = append(plotted, m)
		}
	}
	if len(plotted) == 0 {
		return canvas{}, ErrNothingToPlot
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, m := range plotted {
		p := m.Space.Coordinates
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	spanX, spanY := maxX-minX, maxY-minY

	scale := 0.0
	if spanX > 0 {
		scale = float64(columns-1) / spanX
	}
	if spanY > 0 && (scale == 0 || spanY*scale*cellAspect > maxRows-1) {
		scale = float64(maxRows-1) / (spanY * cellAspect)
	}

	width := int(math.Round(spanX*scale)) + 1
	height := int(math.Round(spanY*scale*cellAspect)) + 1

	c := canvas{
		cells:  make([][]cell, height),
		counts: make(map[domain.SpaceCategory]int),
	}
	for i := range c.cells {
		c.cells[i] = make([]cell, width)
	}

	for _, m := range plotted {
		p := m.Space.Coordinates
		col := int(math.Round((p.X - minX) * scale))
		row := int(math.Round((p.Y - minY) * scale * cellAspect))
		target := &c.cells[row][col]
		// overlapping spaces show the most relevant category
		if !target.set || m.Category < target.category {
			*target = cell{set: true, category: m.Category}
		}
		c.counts[m.Category]++
	}

	return c, nil
}
