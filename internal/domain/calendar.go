package domain

import (
	"strings"
	"time"
)

const (
	FortnightDays = 14
	// YouName is the synthetic display name for the current user.
	YouName = "You"
)

// Fortnight holds the two business weeks shown on the calendar.
type Fortnight struct {
	Start Date
	Weeks [2][]Date
}

// CurrentFortnight starts on this week's Monday, or next Monday on weekends.
func CurrentFortnight(today Date) Fortnight {
	wd := today.Weekday()
	var start Date
	if wd == time.Saturday || wd == time.Sunday {
		// Saturday -> +2, Sunday -> +1
		start = today.AddDays((8 - int(wd)) % 7)
	} else {
		start = today.AddDays(-(int(wd) - int(time.Monday)))
	}

	f := Fortnight{Start: start}
	for offset := 0; offset < FortnightDays; offset++ {
		day := start.AddDays(offset)
		if !day.IsWeekday() {
			continue
		}
		f.Weeks[offset/7] = append(f.Weeks[offset/7], day)
	}
	return f
}

// End is the exclusive upper bound used for range queries.
func (f Fortnight) End() Date {
	return f.Start.AddDays(FortnightDays)
}

type FollowedBookings struct {
	Name  string
	Dates DateSet
}

type GridRow struct {
	Name   string
	Booked []bool
	Space  string
}

type GridWeek struct {
	Label string
	Days  []Date
	// TodayIndex is the position of today in Days, or -1.
	TodayIndex int
	Rows       []GridRow
}

func (w GridWeek) HasToday() bool {
	return w.TodayIndex >= 0
}

type Grid struct {
	Weeks      []GridWeek
	Candidates []Date
	// ShowSpaces is set when desk labels are known for the current run.
	ShowSpaces bool
}

// Reconcile merges the self-booked days, the followed coworkers' days and today's
// desk labels into the display grid. Dates on or after today that are not already
// self-booked become booking candidates.
func Reconcile(f Fortnight, self DateSet, followed []FollowedBookings, today Date, spaces map[string]string) Grid {
	grid := Grid{ShowSpaces: len(spaces) > 0}

	for _, week := range f.Weeks {
		if len(week) == 0 {
			continue
		}
		gw := GridWeek{
			Label:      "WEEK OF " + strings.ToUpper(week[0].Format("02 Jan")),
			Days:       week,
			TodayIndex: -1,
		}

		you := GridRow{Name: YouName, Booked: make([]bool, len(week))}
		for i, day := range week {
			if day == today {
				gw.TodayIndex = i
			}
			booked := self.Has(day)
			you.Booked[i] = booked
			if !booked && !day.Before(today) {
				grid.Candidates = append(grid.Candidates, day)
			}
		}
		if gw.HasToday() {
			you.Space = spaces[YouName]
		}
		gw.Rows = append(gw.Rows, you)

		for _, person := range followed {
			row := GridRow{Name: person.Name, Booked: make([]bool, len(week))}
			hasBooking := false
			for i, day := range week {
				if person.Dates.Has(day) {
					row.Booked[i] = true
					hasBooking = true
				}
			}
			if !hasBooking {
				continue
			}
			if gw.HasToday() {
				row.Space = spaces[person.Name]
			}
			gw.Rows = append(gw.Rows, row)
		}

		grid.Weeks = append(grid.Weeks, gw)
	}

	return grid
}
