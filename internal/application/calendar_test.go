package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuzawa-san/wawona/internal/domain"
)

func splitLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestCalendarLoad(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.workplace.SelfBooked = domain.NewDateSet(
		domain.NewDate(2026, time.October, 13),
		domain.NewDate(2026, time.November, 2),
	)
	h.workplace.Followed = []domain.FollowedBookings{
		{Name: "Ada Lovelace", Dates: domain.NewDateSet(domain.NewDate(2026, time.October, 14))},
		{Name: "Grace Hopper", Dates: domain.NewDateSet()},
	}

	today := domain.NewDate(2026, time.October, 14)
	view, err := NewCalendarService(h.sessions, h.workplace, h.out, nil).Load(context.Background(), today)
	require.NoError(t, err)

	assert.Equal(t, domain.NewDate(2026, time.October, 12), view.Fortnight.Start)
	assert.Equal(t, today, view.Today)
	assert.True(t, view.Self.Has(domain.NewDate(2026, time.October, 13)))
	assert.False(t, view.Self.Has(domain.NewDate(2026, time.November, 2)))
	assert.Len(t, view.Followed, 2)
	assert.Equal(t, map[string]bool{"Ada Lovelace": true, "Grace Hopper": true}, view.FollowedNames())
	assert.Empty(t, h.out.String())
}

func TestCalendarLoadHintsWhenFollowingNobody(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	_, err := NewCalendarService(h.sessions, h.workplace, h.out, nil).Load(context.Background(), domain.NewDate(2026, time.October, 14))
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "You are not following any coworkers.")
}

func TestCalendarLoadPropagatesErrors(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.workplace.FollowingsErr = assert.AnError

	_, err := NewCalendarService(h.sessions, h.workplace, h.out, nil).Load(context.Background(), domain.NewDate(2026, time.October, 14))
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "get followings")
}
