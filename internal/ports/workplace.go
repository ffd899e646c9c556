package ports

import (
	"context"

	"github.com/yuzawa-san/wawona/internal/domain"
)

// IdentityProvider covers the calls that establish a session token.
type IdentityProvider interface {
	VerifyIdentity(ctx context.Context, identity string) error
	Login(ctx context.Context, identity, password string) (domain.LoginResult, error)
	VerifyMFA(ctx context.Context, preMFAToken, code string) error
}

// Workplace covers the calls that need a session token.
type Workplace interface {
	Locations(ctx context.Context, token string) ([]domain.Location, error)
	PendingTasks(ctx context.Context, token string) ([]string, error)
	Task(ctx context.Context, token, taskID string) (domain.Task, error)
	RespondToTask(ctx context.Context, token, taskID string, answers []domain.Answer) error
	Floors(ctx context.Context, token, taskID string) ([]domain.Floor, error)
	Spaces(ctx context.Context, token string, query SpaceQuery) ([]domain.Space, error)
	ReserveSpace(ctx context.Context, token string, req SpaceReservation) (string, error)
	SubmitReservations(ctx context.Context, token string, req domain.ReservationRequest) error
	BookingSummary(ctx context.Context, token string, start, end domain.Date) (domain.DateSet, error)
	Followings(ctx context.Context, token string, start, end domain.Date) ([]domain.FollowedBookings, error)
}

type SpaceQuery struct {
	Availability domain.Availability
	TaskID       string
	FloorID      string
	StartTime    string
	EndTime      string
}

type SpaceReservation struct {
	TaskID        string
	SpaceID       string
	StartTime     string
	EndTime       string
	UserID        string
	ReservationID string
}
