// Package testutil provides in-memory fakes of the ports for tests.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// FakeWorkplace is an in-memory implementation of ports.Workplace.
type FakeWorkplace struct {
	mu sync.Mutex

	// ValidToken, when set, makes every call with another token fail with a 401.
	ValidToken string

	LocationList []domain.Location
	// PendingQueue is consumed one batch per PendingTasks call.
	PendingQueue [][]string
	TaskByID     map[string]domain.Task
	FloorsByTask map[string][]domain.Floor
	Available    []domain.Space
	BookedSpaces []domain.Space
	SelfBooked   domain.DateSet
	Followed     []domain.FollowedBookings

	// Recorded calls.
	Responses         map[string][]domain.Answer
	SpaceReservations []ports.SpaceReservation
	Submitted         []domain.ReservationRequest
	PendingCalls      int
	Rejected          int

	// Error injection for testing
	LocationsErr  error
	PendingErr    error
	TaskErr       error
	RespondErr    error
	FloorsErr     error
	SpacesErr     error
	ReserveErr    error
	SubmitErr     error
	SummaryErr    error
	FollowingsErr error
}

var _ ports.Workplace = (*FakeWorkplace)(nil)

func NewFakeWorkplace() *FakeWorkplace {
	return &FakeWorkplace{
		TaskByID:     make(map[string]domain.Task),
		FloorsByTask: make(map[string][]domain.Floor),
		SelfBooked:   domain.NewDateSet(),
		Responses:    make(map[string][]domain.Answer),
	}
}

// AddTask registers a task.
func (f *FakeWorkplace) AddTask(task domain.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.TaskByID[task.ID] = task
}

func (f *FakeWorkplace) authorize(token string) error {
	if f.ValidToken != "" && token != f.ValidToken {
		f.Rejected++
		return &domain.TransportError{Method: "GET", URL: "/fake", StatusCode: 401, Message: "invalid token"}
	}
	return nil
}

// Locations implements ports.Workplace.
func (f *FakeWorkplace) Locations(ctx context.Context, token string) ([]domain.Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.authorize(token); err != nil {
		return nil, err
	}
	if f.LocationsErr != nil {
		return nil, f.LocationsErr
	}
	return append([]domain.Location(nil), f.LocationList...), nil
}

// PendingTasks implements ports.Workplace.
func (f *FakeWorkplace) PendingTasks(ctx context.Context, token string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.authorize(token); err != nil {
		return nil, err
	}
	f.PendingCalls++
	if f.PendingErr != nil {
		return nil, f.PendingErr
	}
	if len(f.PendingQueue) == 0 {
		return nil, nil
	}
	batch := f.PendingQueue[0]
	f.PendingQueue = f.PendingQueue[1:]
	return batch, nil
}

// Task implements ports.Workplace.
func (f *FakeWorkplace) Task(ctx context.Context, token, taskID string) (domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.authorize(token); err != nil {
		return domain.Task{}, err
	}
	if f.TaskErr != nil {
		return domain.Task{}, f.TaskErr
	}
	task, ok := f.TaskByID[taskID]
	if !ok {
		return domain.Task{}, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}
	return task, nil
}

// RespondToTask implements ports.Workplace.
func (f *FakeWorkplace) RespondToTask(ctx context.Context, token, taskID string, answers []domain.Answer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.authorize(token); err != nil {
		return err
	}
	if f.RespondErr != nil {
		return f.RespondErr
	}
	f.Responses[taskID] = append([]domain.Answer(nil), answers...)
	return nil
}

// Floors implements ports.Workplace.
func (f *FakeWorkplace) Floors(ctx context.Context, token, taskID string) ([]domain.Floor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.authorize(token); err != nil {
		return nil, err
	}
	if f.FloorsErr != nil {
		return nil, f.FloorsErr
	}
	return append([]domain.Floor(nil), f.FloorsByTask[taskID]...), nil
}

// Spaces implements ports.Workplace.
func (f *FakeWorkplace) Spaces(ctx context.Context, token string, query ports.SpaceQuery) ([]domain.Space, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.authorize(token); err != nil {
		return nil, err
	}
	if f.SpacesErr != nil {
		return nil, f.SpacesErr
	}
	source := f.Available
	if query.Availability == domain.Booked {
		source = f.BookedSpaces
	}
	spaces := make([]domain.Space, 0, len(source))
	for _, space := range source {
		space.Availability = query.Availability
		spaces = append(spaces, space)
	}
	return spaces, nil
}

// ReserveSpace implements ports.Workplace.
func (f *FakeWorkplace) ReserveSpace(ctx context.Context, token string, req ports.SpaceReservation) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.authorize(token); err != nil {
		return "", err
	}
	if f.ReserveErr != nil {
		return "", f.ReserveErr
	}
	for _, space := range f.Available {
		if space.UniqueID == req.SpaceID {
			f.SpaceReservations = append(f.SpaceReservations, req)
			return space.Label, nil
		}
	}
	return "", fmt.Errorf("space %s: %w", req.SpaceID, ErrNotFound)
}

// SubmitReservations implements ports.Workplace. Each slot books its start date.
func (f *FakeWorkplace) SubmitReservations(ctx context.Context, token string, req domain.ReservationRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.authorize(token); err != nil {
		return err
	}
	if f.SubmitErr != nil {
		return f.SubmitErr
	}
	f.Submitted = append(f.Submitted, req)
	for _, slot := range req.Slots {
		f.SelfBooked.Add(domain.DateOf(slot.StartUTC))
	}
	return nil
}

// BookingSummary implements ports.Workplace.
func (f *FakeWorkplace) BookingSummary(ctx context.Context, token string, start, end domain.Date) (domain.DateSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.authorize(token); err != nil {
		return nil, err
	}
	if f.SummaryErr != nil {
		return nil, f.SummaryErr
	}
	out := domain.NewDateSet()
	for day := range f.SelfBooked {
		if !day.Before(start) && day.Before(end) {
			out.Add(day)
		}
	}
	return out, nil
}

// Followings implements ports.Workplace.
func (f *FakeWorkplace) Followings(ctx context.Context, token string, start, end domain.Date) ([]domain.FollowedBookings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.authorize(token); err != nil {
		return nil, err
	}
	if f.FollowingsErr != nil {
		return nil, f.FollowingsErr
	}
	return append([]domain.FollowedBookings(nil), f.Followed...), nil
}
