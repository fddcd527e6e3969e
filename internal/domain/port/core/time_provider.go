package core

import (
	"context"
	"time"
)

// TimeProvider abstracts the clock so draws, sales and cancellations can be tested deterministically
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
