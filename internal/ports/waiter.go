package ports

import (
	"context"
	"time"
)

// Waiter pauses between convergence polls.
type Waiter interface {
	Wait(ctx context.Context, d time.Duration) error
}
