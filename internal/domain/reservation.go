package domain

import (
	"fmt"
	"time"
)

const ReservationTypeLocation = "LOCATION"

type Location struct {
	ID       string
	Name     string
	Timezone string
}

func (l Location) TimeLocation() (*time.Location, error) {
	if l.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return nil, fmt.Errorf("location %s timezone: %w", l.ID, err)
	}
	return loc, nil
}

type ReservationSlot struct {
	StartUTC time.Time
	EndUTC   time.Time
	Private  bool
}

type ReservationRequest struct {
	LocationID string
	Slots      []ReservationSlot
}

// EarliestStart is the top of the hour that follows now, in loc.
func EarliestStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc).Add(time.Hour)
	return time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), 0, 0, 0, loc)
}

// BuildReservation computes one slot per date. A start at or before the earliest
// allowed start is clamped to it and flags the convergence poll. The end is one
// minute before endHour. Dates whose window is empty are dropped.
func BuildReservation(location Location, dates []Date, startHour, endHour int, now time.Time) (ReservationRequest, bool, error) {
	loc, err := location.TimeLocation()
	if err != nil {
		return ReservationRequest{}, false, err
	}

	req := ReservationRequest{LocationID: location.ID}
	minStart := EarliestStart(now, loc)
	needsPoll := false
	for _, day := range dates {
		start := day.In(loc, startHour)
		if !start.After(minStart) {
			start = minStart
			needsPoll = true
		}
		end := day.In(loc, endHour).Add(-time.Minute)
		if !start.Before(end) {
			continue
		}
		req.Slots = append(req.Slots, ReservationSlot{
			StartUTC: start.UTC(),
			EndUTC:   end.UTC(),
		})
	}
	return req, needsPoll, nil
}

// RetryPolicy bounds the post-booking convergence poll.
type RetryPolicy struct {
	MaxAttempts int
	Interval    time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 5, Interval: time.Second}
