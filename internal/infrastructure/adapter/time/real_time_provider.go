package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the wall clock.
// Times are returned in UTC so stored timestamps compare consistently across drivers.
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current UTC time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// FixedTimeProvider always reports the same instant until advanced. Used by tests and tooling.
type FixedTimeProvider struct {
	now time.Time
}

// NewFixedTimeProvider returns a provider frozen at now
func NewFixedTimeProvider(now time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{now: now.UTC()}
}

// Now returns the frozen instant
func (p *FixedTimeProvider) Now() time.Time {
	return p.now
}

// Since measures against the frozen instant
func (p *FixedTimeProvider) Since(t time.Time) time.Duration {
	return p.now.Sub(t)
}

// WithTimeout returns a real timeout context
func (p *FixedTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// Advance moves the frozen instant forward
func (p *FixedTimeProvider) Advance(d time.Duration) {
	p.now = p.now.Add(d)
}
