package application

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports/mocks"
)

var headquarters = domain.Location{ID: "loc-1", Name: "HQ", Timezone: "America/New_York"}

func fixedClock(t *testing.T, now time.Time) *mocks.MockClock {
	t.Helper()
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(now).Maybe()
	return clock
}

func newYorkTime(t *testing.T, month time.Month, day, hour, minute int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return time.Date(2026, month, day, hour, minute, 0, 0, loc)
}

func (h *harness) submitter(t *testing.T, now time.Time) *ReservationSubmitter {
	return NewReservationSubmitter(h.sessions, h.workplace, h.resolver(""), fixedClock(t, now), nil, h.out, nil)
}

func TestSubmitSendsOneBatch(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	now := newYorkTime(t, time.October, 14, 7, 30)

	needsPoll, err := h.submitter(t, now).Submit(context.Background(), headquarters, []domain.Date{
		domain.NewDate(2026, time.October, 14),
		domain.NewDate(2026, time.October, 15),
	}, 8, 18)
	require.NoError(t, err)

	assert.True(t, needsPoll)
	require.Len(t, h.workplace.Submitted, 1)
	req := h.workplace.Submitted[0]
	assert.Equal(t, "loc-1", req.LocationID)
	require.Len(t, req.Slots, 2)
	assert.Equal(t, "2026-10-14T12:00:00Z", req.Slots[0].StartUTC.Format(time.RFC3339))
	assert.Equal(t, "2026-10-15T21:59:00Z", req.Slots[1].EndUTC.Format(time.RFC3339))
}

func TestSubmitWithoutWindowsIsNoop(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.workplace.SubmitErr = assert.AnError
	now := newYorkTime(t, time.October, 14, 17, 30)

	needsPoll, err := h.submitter(t, now).Submit(context.Background(), headquarters, []domain.Date{
		domain.NewDate(2026, time.October, 14),
	}, 8, 18)
	require.NoError(t, err)
	assert.True(t, needsPoll)
	assert.Empty(t, h.workplace.Submitted)
}

func TestSubmitPropagatesBackendError(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.workplace.SubmitErr = &domain.TransportError{Method: "POST", URL: "/rtw/resv/client/reservations", StatusCode: 400, Message: "overlapping reservation"}
	now := newYorkTime(t, time.October, 14, 20, 0)

	_, err := h.submitter(t, now).Submit(context.Background(), headquarters, []domain.Date{
		domain.NewDate(2026, time.October, 15),
	}, 8, 18)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlapping reservation")
}

func TestConvergeResolvesFirstNonEmptyPoll(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.workplace.PendingQueue = [][]string{nil, nil, {"task-1"}, {"task-2"}}
	h.workplace.AddTask(domain.Task{
		ID:      "task-1",
		Title:   "Reservation reminder",
		Kind:    domain.TaskInformational,
		Booking: bookingWindow(),
	})
	h.workplace.BookedSpaces = []domain.Space{{UniqueID: "u7", SpaceID: "D7", Label: "Desk 7"}}

	spaces, err := h.submitter(t, time.Now()).Converge(context.Background(), domain.RetryPolicy{MaxAttempts: 5})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{domain.YouName: "Desk 7"}, spaces)
	assert.Equal(t, 3, h.workplace.PendingCalls)
	assert.NotContains(t, h.out.String(), "Unable to find pending tasks.")
}

func TestConvergeGivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	spaces, err := h.submitter(t, time.Now()).Converge(context.Background(), domain.RetryPolicy{MaxAttempts: 5})
	require.NoError(t, err)

	assert.Nil(t, spaces)
	assert.Equal(t, 5, h.workplace.PendingCalls)
	assert.Equal(t, 5, countLines(h.out.String(), "Waiting for pending tasks..."))
	assert.Contains(t, h.out.String(), "Unable to find pending tasks.")
}

func TestConvergeHonoursCancellation(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.submitter(t, time.Now()).Converge(ctx, domain.RetryPolicy{MaxAttempts: 5, Interval: time.Hour})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, h.workplace.PendingCalls)
}

func countLines(output, line string) int {
	count := 0
	for _, l := range splitLines(output) {
		if l == line {
			count++
		}
	}
	return count
}
