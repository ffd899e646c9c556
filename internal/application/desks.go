package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

const (
	spacePrompt     = "Space"
	preferredPrompt = "Preferred space ID (press return for none)"
)

var categoryTones = map[domain.SpaceCategory]ports.OptionTone{
	domain.CategoryPreferred: ports.ToneHighlight,
	domain.CategoryAvailable: ports.TonePositive,
	domain.CategoryFollowed:  ports.ToneFollowed,
	domain.CategoryTaken:     ports.ToneNegative,
}

type ChooseRequest struct {
	Floor       domain.Floor
	Available   []domain.Space
	Booked      []domain.Space
	PreferredID string
	Followed    map[string]bool
}

// DeskSelector lets the user pick one available desk on a floor.
type DeskSelector struct {
	prompter  ports.Prompter
	floorPlan ports.FloorPlanRenderer
	out       io.Writer
	logger    *slog.Logger

	preferredID    string
	preferredKnown bool
}

func NewDeskSelector(preferredID string, prompter ports.Prompter, floorPlan ports.FloorPlanRenderer, out io.Writer, logger *slog.Logger) *DeskSelector {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	preferredID = strings.TrimSpace(preferredID)
	return &DeskSelector{
		prompter:       prompter,
		floorPlan:      floorPlan,
		out:            out,
		logger:         logger,
		preferredID:    preferredID,
		preferredKnown: preferredID != "",
	}
}

// PreferredID returns the configured preferred desk, asking once per run when
// none is configured.
func (d *DeskSelector) PreferredID(ctx context.Context) (string, error) {
	if d.preferredKnown {
		return d.preferredID, nil
	}

	answer, err := d.prompter.Text(ctx, ports.TextPrompt{Message: preferredPrompt})
	if err != nil {
		return "", fmt.Errorf("ask preferred space: %w", err)
	}
	d.preferredID = strings.TrimSpace(answer)
	d.preferredKnown = true
	return d.preferredID, nil
}

// Choose returns the unique id of the selected available space. Booked spaces are
// listed but selecting one re-prompts.
func (d *DeskSelector) Choose(ctx context.Context, req ChooseRequest) (string, error) {
	if len(req.Available) == 0 {
		return "", &domain.NoChoiceError{Prompt: spacePrompt}
	}

	all := make([]domain.Space, 0, len(req.Available)+len(req.Booked))
	for _, space := range req.Available {
		space.Availability = domain.Available
		all = append(all, space)
	}
	for _, space := range req.Booked {
		space.Availability = domain.Booked
		all = append(all, space)
	}
	domain.SortSpaces(all)

	selectable := make(map[string]bool, len(req.Available))
	options := make([]ports.Option, 0, len(all))
	markers := make([]ports.PlanMarker, 0, len(all))
	var availableDefault, bookedDefault string
	for _, space := range all {
		category := domain.Classify(space, req.PreferredID, req.Followed)
		preferred := req.PreferredID != "" && space.SpaceID == req.PreferredID

		label := space.Label
		if space.Availability == domain.Available {
			selectable[space.UniqueID] = true
			if preferred {
				availableDefault = space.UniqueID
			}
		} else {
			if space.Occupant != "" {
				label = fmt.Sprintf("%s (%s)", label, space.Occupant)
			}
			if preferred {
				label += " (preferred)"
				bookedDefault = space.UniqueID
			}
		}

		options = append(options, ports.Option{Label: label, Value: space.UniqueID, Tone: categoryTones[category]})
		markers = append(markers, ports.PlanMarker{Space: space, Category: category})
	}

	defaultID := availableDefault
	if defaultID == "" {
		defaultID = bookedDefault
	}

	d.drawFloorPlan(ctx, ports.FloorPlan{Floor: req.Floor, Markers: markers})

	for {
		selected, err := choose(ctx, d.prompter, d.out, ports.SelectPrompt{
			Message: spacePrompt,
			Options: options,
			Default: defaultID,
		})
		if err != nil {
			return "", err
		}
		if selectable[selected] {
			return selected, nil
		}
		fmt.Fprintln(d.out, "Invalid selection")
	}
}

func (d *DeskSelector) drawFloorPlan(ctx context.Context, plan ports.FloorPlan) {
	if d.floorPlan == nil || plan.Floor.Blueprint == "" || !hasCoordinates(plan.Markers) {
		return
	}

	rendered, err := d.floorPlan.RenderFloorPlan(plan)
	if err != nil {
		d.logger.WarnContext(ctx, "floor plan unavailable", "floor", plan.Floor.ID, "error", err)
		fmt.Fprintf(d.out, "Unable to draw floor plan: %v\n", err)
		return
	}
	fmt.Fprintln(d.out, rendered)
}

func hasCoordinates(markers []ports.PlanMarker) bool {
	for _, m := range markers {
		if m.Space.Coordinates != nil {
			return true
		}
	}
	return false
}
