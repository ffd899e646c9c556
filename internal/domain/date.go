package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a civil calendar date with no time-of-day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// In returns the given wall-clock hour of the date in loc.
func (d Date) In(loc *time.Location, hour int) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, 0, 0, 0, loc)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.In(time.UTC, 0).AddDate(0, 0, n))
}

func (d Date) Weekday() time.Weekday {
	return d.In(time.UTC, 0).Weekday()
}

func (d Date) IsWeekday() bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func (d Date) Before(o Date) bool {
	return d.In(time.UTC, 0).Before(o.In(time.UTC, 0))
}

func (d Date) After(o Date) bool {
	return o.Before(d)
}

func (d Date) Format(layout string) string {
	return d.In(time.UTC, 0).Format(layout)
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

// QueryString renders the DD-MM-YYYY form used by the dashboard endpoints.
func (d Date) QueryString() string {
	return fmt.Sprintf("%02d-%02d-%d", d.Day, int(d.Month), d.Year)
}

// ParseQueryDate parses DD-MM-YYYY.
func ParseQueryDate(raw string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q", raw)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day in %q: %w", raw, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month in %q: %w", raw, err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year in %q: %w", raw, err)
	}
	return NewDate(year, time.Month(month), day), nil
}

// ParseTimestampDate takes the date part of a "YYYY-MM-DD hh:mm:ss" timestamp.
func ParseTimestampDate(raw string) (Date, error) {
	datePart, _, _ := strings.Cut(strings.TrimSpace(raw), " ")
	t, err := time.Parse(time.DateOnly, datePart)
	if err != nil {
		return Date{}, fmt.Errorf("invalid timestamp %q: %w", raw, err)
	}
	return DateOf(t), nil
}

type DateSet map[Date]struct{}

func NewDateSet(dates ...Date) DateSet {
	set := make(DateSet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

func (s DateSet) Has(d Date) bool {
	_, ok := s[d]
	return ok
}

func (s DateSet) Add(d Date) {
	s[d] = struct{}{}
}
