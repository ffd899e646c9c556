package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
	"github.com/yuzawa-san/wawona/internal/testutil"
)

func plottedFloor() domain.Floor {
	return domain.Floor{ID: "floor-3", Name: "Floor 3", Active: true, Blueprint: "https://cdn.example.com/floor-3.png"}
}

func TestChooseDefaultsToAvailablePreferredSpace(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.prompter.On(spacePrompt, testutil.Answer{})

	selected, err := h.desks("D9").Choose(context.Background(), ChooseRequest{
		Available: []domain.Space{
			{UniqueID: "u9", SpaceID: "D9", Label: "desk 9"},
			{UniqueID: "u11", SpaceID: "D11", Label: "Desk 11"},
		},
		Booked: []domain.Space{
			{UniqueID: "u1", SpaceID: "D1", Label: "Desk 1", Occupant: "Grace Hopper"},
		},
		PreferredID: "D9",
	})
	require.NoError(t, err)
	assert.Equal(t, "u9", selected)

	require.Len(t, h.prompter.Selects, 1)
	prompt := h.prompter.Selects[0]
	assert.Equal(t, "u9", prompt.Default)
	assert.Equal(t, []ports.Option{
		{Label: "Desk 1 (Grace Hopper)", Value: "u1", Tone: ports.ToneNegative},
		{Label: "desk 9", Value: "u9", Tone: ports.ToneHighlight},
		{Label: "Desk 11", Value: "u11", Tone: ports.TonePositive},
	}, prompt.Options)
}

func TestChooseSingleAvailableSpaceIsTakenDirectly(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	selected, err := h.desks("").Choose(context.Background(), ChooseRequest{
		Available: []domain.Space{{UniqueID: "u4", SpaceID: "D4", Label: "Desk 4"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "u4", selected)
	assert.Contains(t, h.out.String(), "[?] Space: Desk 4 (only choice)")
}

func TestChooseWithoutAvailableSpaces(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	_, err := h.desks("").Choose(context.Background(), ChooseRequest{
		Booked: []domain.Space{{UniqueID: "u1", Label: "Desk 1"}},
	})

	var noChoice *domain.NoChoiceError
	require.ErrorAs(t, err, &noChoice)
	assert.Equal(t, spacePrompt, noChoice.Prompt)
}

func TestChooseAbortIsNoChoice(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	_, err := h.desks("").Choose(context.Background(), ChooseRequest{
		Available: []domain.Space{
			{UniqueID: "u1", Label: "Desk 1"},
			{UniqueID: "u2", Label: "Desk 2"},
		},
	})

	var noChoice *domain.NoChoiceError
	require.ErrorAs(t, err, &noChoice)
	assert.ErrorIs(t, err, domain.ErrPromptAborted)
}

func TestChooseDrawsFloorPlanForPlottedSpaces(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.prompter.On(spacePrompt, testutil.Answer{Value: "u2"})

	_, err := h.desks("D1").Choose(context.Background(), ChooseRequest{
		Floor: plottedFloor(),
		Available: []domain.Space{
			{UniqueID: "u1", SpaceID: "D1", Label: "Desk 1", Coordinates: &domain.Point{X: 1, Y: 1}},
			{UniqueID: "u2", SpaceID: "D2", Label: "Desk 2"},
		},
		Booked: []domain.Space{
			{UniqueID: "u3", SpaceID: "D3", Label: "Desk 3", Occupant: "Ada Lovelace", Coordinates: &domain.Point{X: 5, Y: 1}},
		},
		PreferredID: "D1",
		Followed:    map[string]bool{"Ada Lovelace": true},
	})
	require.NoError(t, err)

	assert.Contains(t, h.out.String(), "[floor plan]")
	require.Len(t, h.floorPlan.Plans, 1)
	plan := h.floorPlan.Plans[0]
	assert.Equal(t, "floor-3", plan.Floor.ID)
	require.Len(t, plan.Markers, 3)
	assert.Equal(t, domain.CategoryPreferred, plan.Markers[0].Category)
	assert.Equal(t, domain.CategoryAvailable, plan.Markers[1].Category)
	assert.Equal(t, domain.CategoryFollowed, plan.Markers[2].Category)
}

func TestChooseSkipsFloorPlanWithoutBlueprintOrCoordinates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		floor domain.Floor
		point *domain.Point
	}{
		{name: "no blueprint", floor: domain.Floor{ID: "floor-1"}, point: &domain.Point{X: 1, Y: 1}},
		{name: "no coordinates", floor: plottedFloor()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			_, err := h.desks("").Choose(context.Background(), ChooseRequest{
				Floor:     tt.floor,
				Available: []domain.Space{{UniqueID: "u1", Label: "Desk 1", Coordinates: tt.point}},
			})
			require.NoError(t, err)
			assert.Empty(t, h.floorPlan.Plans)
		})
	}
}

func TestChooseDowngradesFloorPlanFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.floorPlan.Err = errors.New("render floor plan: index out of range")

	selected, err := h.desks("").Choose(context.Background(), ChooseRequest{
		Floor:     plottedFloor(),
		Available: []domain.Space{{UniqueID: "u1", Label: "Desk 1", Coordinates: &domain.Point{X: 1, Y: 1}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", selected)
	assert.Contains(t, h.out.String(), "Unable to draw floor plan: render floor plan: index out of range")
}

func TestPreferredIDAskedOncePerRun(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.prompter.On(preferredPrompt, testutil.Answer{Value: " D5 "})
	desks := h.desks("")

	for range 2 {
		id, err := desks.PreferredID(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "D5", id)
	}
	assert.Equal(t, []string{preferredPrompt}, h.prompter.Asked)

	configured, err := h.desks("D1").PreferredID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "D1", configured)
}
