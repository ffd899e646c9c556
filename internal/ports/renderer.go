package ports

import "github.com/yuzawa-san/wawona/internal/domain"

type GridRenderer interface {
	RenderGrid(grid domain.Grid) (string, error)
}

// FloorPlanRenderer draws spaces with coordinates onto a character grid.
type FloorPlanRenderer interface {
	RenderFloorPlan(plan FloorPlan) (string, error)
}

type FloorPlan struct {
	Floor   domain.Floor
	Markers []PlanMarker
}

type PlanMarker struct {
	Space    domain.Space
	Category domain.SpaceCategory
}
