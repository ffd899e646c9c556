package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

type ReservationSubmitter struct {
	sessions  *SessionManager
	workplace ports.Workplace
	resolver  *TaskResolver
	clock     ports.Clock
	waiter    ports.Waiter
	out       io.Writer
	logger    *slog.Logger
}

func NewReservationSubmitter(sessions *SessionManager, workplace ports.Workplace, resolver *TaskResolver, clock ports.Clock, waiter ports.Waiter, out io.Writer, logger *slog.Logger) *ReservationSubmitter {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if waiter == nil {
		waiter = TimerWaiter{}
	}
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &ReservationSubmitter{
		sessions:  sessions,
		workplace: workplace,
		resolver:  resolver,
		clock:     clock,
		waiter:    waiter,
		out:       out,
		logger:    logger,
	}
}

// Submit books the dates at location in a single batch and reports whether a
// convergence poll should follow.
func (s *ReservationSubmitter) Submit(ctx context.Context, location domain.Location, dates []domain.Date, startHour, endHour int) (bool, error) {
	req, needsPoll, err := domain.BuildReservation(location, dates, startHour, endHour, s.clock.Now())
	if err != nil {
		return false, fmt.Errorf("build reservation: %w", err)
	}
	if len(req.Slots) == 0 {
		s.logger.DebugContext(ctx, "no reservation windows left", "dates", len(dates))
		return needsPoll, nil
	}

	err = doWithSession(ctx, s.sessions, func(token string) error {
		return s.workplace.SubmitReservations(ctx, token, req)
	})
	if err != nil {
		return false, fmt.Errorf("submit reservations: %w", err)
	}

	s.logger.DebugContext(ctx, "reservations submitted", "location", location.ID, "slots", len(req.Slots), "poll", needsPoll)
	return needsPoll, nil
}

// Converge polls for tasks spawned by a booking and resolves the first batch found.
// Not finding any is reported but is not an error.
func (s *ReservationSubmitter) Converge(ctx context.Context, policy domain.RetryPolicy) (map[string]string, error) {
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		fmt.Fprintln(s.out, "Waiting for pending tasks...")
		if err := s.waiter.Wait(ctx, policy.Interval); err != nil {
			return nil, err
		}

		taskIDs, err := withSession(ctx, s.sessions, func(token string) ([]string, error) {
			return s.workplace.PendingTasks(ctx, token)
		})
		if err != nil {
			return nil, fmt.Errorf("get pending tasks: %w", err)
		}
		s.logger.DebugContext(ctx, "polled pending tasks", "attempt", attempt, "tasks", len(taskIDs))
		if len(taskIDs) > 0 {
			return s.resolver.Resolve(ctx, taskIDs)
		}
	}

	fmt.Fprintln(s.out, "Unable to find pending tasks.")
	return nil, nil
}

// TimerWaiter sleeps for the interval unless ctx ends first.
type TimerWaiter struct{}

func (TimerWaiter) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
