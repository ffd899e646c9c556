package floorplan

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/yuzawa-san/wawona/internal/ports"
	"golang.org/x/term"
)

const (
	// MaxColumns caps the plan width on wide terminals.
	MaxColumns = 100
	minColumns = 10
	frameWidth = 2
	maxRows    = 40
	// cellAspect is the width/height ratio of a monospaced terminal cell.
	cellAspect     = 0.5
	fallbackColumn = 80
)

var ErrNothingToPlot = errors.New("no spaces with coordinates")

type Renderer struct {
	styles styles
	width  func() int
}

var _ ports.FloorPlanRenderer = (*Renderer)(nil)

type fileDescriptor interface {
	Fd() uintptr
}

// NewRenderer sizes the plan to the terminal behind out, if there is one.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		styles: newStyles(lipgloss.NewRenderer(out)),
		width:  func() int { return terminalWidth(out) },
	}
}

func NewRendererWithProfile(out io.Writer, profile termenv.Profile, width int) *Renderer {
	lip := lipgloss.NewRenderer(out, termenv.WithProfile(profile))
	lip.SetColorProfile(profile)
	return &Renderer{
		styles: newStyles(lip),
		width:  func() int { return width },
	}
}

func terminalWidth(out io.Writer) int {
	f, ok := out.(fileDescriptor)
	if !ok {
		return fallbackColumn
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fallbackColumn
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallbackColumn
	}
	return width
}

func (r *Renderer) RenderFloorPlan(plan ports.FloorPlan) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out = ""
			err = fmt.Errorf("render floor plan: %v", rec)
		}
	}()

	columns := min(r.width(), MaxColumns) - frameWidth
	if columns < minColumns {
		columns = minColumns
	}

	c, err := layout(plan.Markers, columns)
	if err != nil {
		return "", fmt.Errorf("render floor plan: %w", err)
	}

	return renderCanvas(plan, c, r.styles), nil
}
