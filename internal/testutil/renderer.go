package testutil

import (
	"fmt"
	"sync"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

// GridRecorder records rendered grids and returns a short summary line.
type GridRecorder struct {
	mu    sync.Mutex
	Grids []domain.Grid
}

var _ ports.GridRenderer = (*GridRecorder)(nil)

func (r *GridRecorder) RenderGrid(grid domain.Grid) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Grids = append(r.Grids, grid)
	return fmt.Sprintf("[grid %d: %d weeks]", len(r.Grids), len(grid.Weeks)), nil
}

// FloorPlanStub returns Output or Err and records plans.
type FloorPlanStub struct {
	mu     sync.Mutex
	Output string
	Err    error
	Plans  []ports.FloorPlan
}

var _ ports.FloorPlanRenderer = (*FloorPlanStub)(nil)

func (s *FloorPlanStub) RenderFloorPlan(plan ports.FloorPlan) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Plans = append(s.Plans, plan)
	return s.Output, s.Err
}
