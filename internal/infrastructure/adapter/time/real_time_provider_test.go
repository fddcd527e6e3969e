package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider(t *testing.T) {
	p := NewRealTimeProvider()

	now := p.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.GreaterOrEqual(t, p.Since(now), time.Duration(0))

	ctx, cancel := p.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}

func TestFixedTimeProvider(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	p := NewFixedTimeProvider(start)

	assert.Equal(t, start, p.Now())
	p.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), p.Now())
	assert.Equal(t, 90*time.Second, p.Since(start))
}
