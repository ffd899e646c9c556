package calendar

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	grid   domain.Grid
	styles styles
	output string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderGrid(m.grid, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Renderer draws the fortnight grid as a bordered table.
type Renderer struct {
	styles styles
}

var _ ports.GridRenderer = (*Renderer)(nil)

// NewRenderer detects the colour profile of out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{styles: newStyles(lipgloss.NewRenderer(out))}
}

func NewRendererWithProfile(out io.Writer, profile termenv.Profile) *Renderer {
	lip := lipgloss.NewRenderer(out, termenv.WithProfile(profile))
	lip.SetColorProfile(profile)
	return &Renderer{styles: newStyles(lip)}
}

func (r *Renderer) RenderGrid(grid domain.Grid) (string, error) {
	p := tea.NewProgram(
		model{grid: grid, styles: r.styles},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
