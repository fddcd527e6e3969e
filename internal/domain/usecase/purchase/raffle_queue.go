package purchase

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
)

// SellFunc sells the numbers of one allocation request
type SellFunc func(ctx context.Context, req usecase.AllocationRequest) ([]*entity.Ticket, error)

// RaffleQueue funnels sales of the same raffle through one worker so hot raffles
// stop fighting over the same rows. Storage constraints remain the correctness guard.
type RaffleQueue struct {
	logger    coreport.Logger
	queueSize int
	sell      SellFunc

	mu      sync.RWMutex
	closed  bool
	queues  map[uint64]chan *saleRequest
	workers sync.WaitGroup
}

type saleRequest struct {
	ctx        context.Context
	req        usecase.AllocationRequest
	resultChan chan saleResult
	// state moves from pending to claimed by the worker or abandoned by the caller, once
	state atomic.Int32
}

const (
	salePending int32 = iota
	saleClaimed
	saleAbandoned
)

type saleResult struct {
	tickets []*entity.Ticket
	err     error
}

// NewRaffleQueue creates a new per-raffle queue
func NewRaffleQueue(logger coreport.Logger, queueSize int, sell SellFunc) *RaffleQueue {
	if sell == nil {
		panic("sell function cannot be nil")
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &RaffleQueue{
		logger:    logger,
		queueSize: queueSize,
		sell:      sell,
		queues:    make(map[uint64]chan *saleRequest),
	}
}

// Enqueue hands the request to the raffle's worker and waits for its result
func (q *RaffleQueue) Enqueue(ctx context.Context, req usecase.AllocationRequest) ([]*entity.Ticket, error) {
	item := &saleRequest{
		ctx:        ctx,
		req:        req,
		resultChan: make(chan saleResult, 1),
	}

	if err := q.push(ctx, item); err != nil {
		return nil, err
	}

	select {
	case res := <-item.resultChan:
		return res.tickets, res.err
	case <-ctx.Done():
		if item.state.CompareAndSwap(salePending, saleAbandoned) {
			q.logger.Warn("Context canceled while waiting in the sale queue", map[string]any{
				"raffle_id":      req.RaffleID,
				"transaction_id": req.TransactionID,
				"error":          ctx.Err().Error(),
			})
			return nil, ctx.Err()
		}
	}

	// The worker claimed the sale, so wait for its outcome
	res := <-item.resultChan
	return res.tickets, res.err
}

func (q *RaffleQueue) push(ctx context.Context, item *saleRequest) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return errs.ErrInternalServer
	}
	queue, ok := q.queues[item.req.RaffleID]
	q.mu.RUnlock()

	if !ok {
		queue = q.queueFor(item.req.RaffleID)
		if queue == nil {
			return errs.ErrInternalServer
		}
	}

	// Holding the read lock keeps Shutdown from closing the channel mid-send
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return errs.ErrInternalServer
	}

	select {
	case queue <- item:
		return nil
	case <-ctx.Done():
		q.logger.Warn("Context canceled while enqueueing sale", map[string]any{
			"raffle_id":      item.req.RaffleID,
			"transaction_id": item.req.TransactionID,
			"error":          ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// queueFor returns the raffle's channel, starting its worker on first use
func (q *RaffleQueue) queueFor(raffleID uint64) chan *saleRequest {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	if queue, ok := q.queues[raffleID]; ok {
		return queue
	}

	queue := make(chan *saleRequest, q.queueSize)
	q.queues[raffleID] = queue
	q.workers.Add(1)
	go q.work(raffleID, queue)

	q.logger.Info("Started sale queue worker", map[string]any{"raffle_id": raffleID})
	return queue
}

func (q *RaffleQueue) work(raffleID uint64, queue chan *saleRequest) {
	defer q.workers.Done()

	for item := range queue {
		if !item.state.CompareAndSwap(salePending, saleClaimed) {
			continue
		}
		if err := item.ctx.Err(); err != nil {
			item.resultChan <- saleResult{err: err}
			continue
		}
		tickets, err := q.sell(item.ctx, item.req)
		item.resultChan <- saleResult{tickets: tickets, err: err}
	}

	q.logger.Info("Sale queue worker stopped", map[string]any{"raffle_id": raffleID})
}

// Shutdown stops accepting sales, drains queued ones and waits for the workers
func (q *RaffleQueue) Shutdown() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	for _, queue := range q.queues {
		close(queue)
	}
	q.mu.Unlock()

	q.workers.Wait()
	q.logger.Info("Sale queues shut down", nil)
}
