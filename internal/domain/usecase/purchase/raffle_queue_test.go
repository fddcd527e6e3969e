package purchase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
	mockcore "github.com/amirhossein-jamali/raffle-service/mocks/port/core"
)

func quietLogger(t *testing.T) *mockcore.MockLogger {
	l := mockcore.NewMockLogger(t)
	l.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return l
}

func TestNewRaffleQueue(t *testing.T) {
	t.Run("Nil sell function panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewRaffleQueue(quietLogger(t), 4, nil)
		})
	})

	t.Run("Non-positive size falls back to one", func(t *testing.T) {
		q := NewRaffleQueue(quietLogger(t), 0, func(context.Context, usecase.AllocationRequest) ([]*entity.Ticket, error) {
			return nil, nil
		})
		assert.Equal(t, 1, q.queueSize)
	})
}

func TestRaffleQueue_Enqueue(t *testing.T) {
	t.Run("Returns the sale result", func(t *testing.T) {
		q := NewRaffleQueue(quietLogger(t), 2, func(_ context.Context, req usecase.AllocationRequest) ([]*entity.Ticket, error) {
			return []*entity.Ticket{{RaffleID: req.RaffleID, Number: req.Numbers[0]}}, nil
		})
		defer q.Shutdown()

		tickets, err := q.Enqueue(context.Background(), usecase.AllocationRequest{RaffleID: 1, Numbers: []int{5}})
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, 5, tickets[0].Number)
	})

	t.Run("Propagates sale errors", func(t *testing.T) {
		q := NewRaffleQueue(quietLogger(t), 2, func(context.Context, usecase.AllocationRequest) ([]*entity.Ticket, error) {
			return nil, errs.ErrNumberUnavailable
		})
		defer q.Shutdown()

		_, err := q.Enqueue(context.Background(), usecase.AllocationRequest{RaffleID: 1, Numbers: []int{5}})
		assert.ErrorIs(t, err, errs.ErrNumberUnavailable)
	})

	t.Run("Same raffle is processed one sale at a time", func(t *testing.T) {
		var running, peak atomic.Int32
		q := NewRaffleQueue(quietLogger(t), 8, func(context.Context, usecase.AllocationRequest) ([]*entity.Ticket, error) {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return nil, nil
		})
		defer q.Shutdown()

		var wg sync.WaitGroup
		for i := 1; i <= 6; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_, err := q.Enqueue(context.Background(), usecase.AllocationRequest{RaffleID: 7, Numbers: []int{n}})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		assert.Equal(t, int32(1), peak.Load())
	})

	t.Run("Different raffles get their own worker", func(t *testing.T) {
		release := make(chan struct{})
		q := NewRaffleQueue(quietLogger(t), 2, func(_ context.Context, req usecase.AllocationRequest) ([]*entity.Ticket, error) {
			if req.RaffleID == 1 {
				<-release
			}
			return nil, nil
		})
		defer q.Shutdown()

		blocked := make(chan error, 1)
		go func() {
			_, err := q.Enqueue(context.Background(), usecase.AllocationRequest{RaffleID: 1})
			blocked <- err
		}()

		_, err := q.Enqueue(context.Background(), usecase.AllocationRequest{RaffleID: 2})
		require.NoError(t, err)

		close(release)
		assert.NoError(t, <-blocked)
	})

	t.Run("Cancelled context stops waiting while queued", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		var sold atomic.Int32
		q := NewRaffleQueue(quietLogger(t), 2, func(_ context.Context, req usecase.AllocationRequest) ([]*entity.Ticket, error) {
			if req.TransactionID == "TXN-BUSY" {
				close(started)
				<-release
			}
			sold.Add(1)
			return nil, nil
		})

		busy := make(chan error, 1)
		go func() {
			_, err := q.Enqueue(context.Background(), usecase.AllocationRequest{RaffleID: 3, TransactionID: "TXN-BUSY"})
			busy <- err
		}()
		<-started

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := q.Enqueue(ctx, usecase.AllocationRequest{RaffleID: 3, TransactionID: "TXN-LATE"})
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		close(release)
		require.NoError(t, <-busy)
		q.Shutdown()
		assert.Equal(t, int32(1), sold.Load(), "abandoned request must not be sold")
	})

	t.Run("Sale that started is reported even if the caller gives up", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			ctx, cancel := context.WithCancel(context.Background())
			sold := []*entity.Ticket{{ID: uint64(i + 1), Number: 7}}
			q := NewRaffleQueue(quietLogger(t), 1, func(context.Context, usecase.AllocationRequest) ([]*entity.Ticket, error) {
				cancel()
				time.Sleep(time.Millisecond)
				return sold, nil
			})

			tickets, err := q.Enqueue(ctx, usecase.AllocationRequest{RaffleID: 9, TransactionID: "TXN-COMMIT"})
			require.NoError(t, err)
			assert.Equal(t, sold, tickets)
			q.Shutdown()
		}
	})

	t.Run("Refuses work after shutdown", func(t *testing.T) {
		q := NewRaffleQueue(quietLogger(t), 2, func(context.Context, usecase.AllocationRequest) ([]*entity.Ticket, error) {
			return nil, nil
		})
		_, err := q.Enqueue(context.Background(), usecase.AllocationRequest{RaffleID: 1})
		require.NoError(t, err)

		q.Shutdown()
		q.Shutdown()

		_, err = q.Enqueue(context.Background(), usecase.AllocationRequest{RaffleID: 1})
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}
