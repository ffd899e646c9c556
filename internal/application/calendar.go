package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

const noFollowingsHint = "You are not following any coworkers.\n" +
	"Add them in https://px.sequoia.com/workplace or the app, and they will appear calendar below."

// CalendarView is the raw booking state for one fortnight.
type CalendarView struct {
	Fortnight domain.Fortnight
	Today     domain.Date
	Self      domain.DateSet
	Followed  []domain.FollowedBookings
}

// FollowedNames is the set of coworker names used to classify desks.
func (v CalendarView) FollowedNames() map[string]bool {
	names := make(map[string]bool, len(v.Followed))
	for _, person := range v.Followed {
		names[person.Name] = true
	}
	return names
}

type CalendarService struct {
	sessions  *SessionManager
	workplace ports.Workplace
	out       io.Writer
	logger    *slog.Logger
}

func NewCalendarService(sessions *SessionManager, workplace ports.Workplace, out io.Writer, logger *slog.Logger) *CalendarService {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &CalendarService{
		sessions:  sessions,
		workplace: workplace,
		out:       out,
		logger:    logger,
	}
}

// Load fetches the caller's and the followed coworkers' bookings for the
// fortnight containing today.
func (c *CalendarService) Load(ctx context.Context, today domain.Date) (CalendarView, error) {
	f := domain.CurrentFortnight(today)

	self, err := c.Booked(ctx, f)
	if err != nil {
		return CalendarView{}, err
	}

	followed, err := withSession(ctx, c.sessions, func(token string) ([]domain.FollowedBookings, error) {
		return c.workplace.Followings(ctx, token, f.Start, f.End())
	})
	if err != nil {
		return CalendarView{}, fmt.Errorf("get followings: %w", err)
	}
	if len(followed) == 0 {
		fmt.Fprintln(c.out, noFollowingsHint)
	}

	c.logger.DebugContext(ctx, "calendar loaded", "start", f.Start.String(), "self", len(self), "followed", len(followed))
	return CalendarView{Fortnight: f, Today: today, Self: self, Followed: followed}, nil
}

// Booked re-reads the caller's booked days.
func (c *CalendarService) Booked(ctx context.Context, f domain.Fortnight) (domain.DateSet, error) {
	self, err := withSession(ctx, c.sessions, func(token string) (domain.DateSet, error) {
		return c.workplace.BookingSummary(ctx, token, f.Start, f.End())
	})
	if err != nil {
		return nil, fmt.Errorf("get booking summary: %w", err)
	}
	if self == nil {
		self = domain.NewDateSet()
	}
	return self, nil
}
