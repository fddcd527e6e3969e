package paymentmethod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
)

// DefaultCacheTTL is used when the registry is created without a TTL
const DefaultCacheTTL = 5 * time.Minute

// Registry caches the active payment methods for the purchase flow.
// A failed refresh keeps serving the previous snapshot; without any snapshot
// the failure is returned so purchases are refused.
type Registry struct {
	repo         persistence.PaymentMethodRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	ttl          time.Duration

	mu        sync.RWMutex
	snapshot  entity.PaymentMethodSet
	loaded    bool
	expiresAt time.Time

	// refreshMu lets one caller reload while the others wait for its result
	refreshMu sync.Mutex
}

var _ usecase.PaymentMethodRegistry = (*Registry)(nil)

// NewRegistry creates a new payment method registry
func NewRegistry(repo persistence.PaymentMethodRepository, timeProvider coreport.TimeProvider, logger coreport.Logger, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Registry{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
		ttl:          ttl,
	}
}

// ListActiveMethods returns the cached methods, reloading them once expired
func (r *Registry) ListActiveMethods(ctx context.Context) (entity.PaymentMethodSet, error) {
	if set, ok := r.fresh(); ok {
		return set, nil
	}

	r.refreshMu.Lock()
	defer r.refreshMu.Unlock()

	// Another caller may have reloaded while we waited
	if set, ok := r.fresh(); ok {
		return set, nil
	}

	if err := r.load(ctx); err != nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		if !r.loaded {
			return entity.PaymentMethodSet{}, err
		}
		r.logger.Warn("Serving stale payment methods", map[string]any{
			"error":   err.Error(),
			"methods": r.snapshot.Len(),
		})
		return r.snapshot, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot, nil
}

// Refresh reloads the methods now. The previous snapshot stays in place on failure.
func (r *Registry) Refresh(ctx context.Context) error {
	r.refreshMu.Lock()
	defer r.refreshMu.Unlock()
	return r.load(ctx)
}

// Invalidate makes the next read reload from storage
func (r *Registry) Invalidate() {
	r.mu.Lock()
	r.expiresAt = time.Time{}
	r.mu.Unlock()
	r.logger.Debug("Payment method cache invalidated", nil)
}

func (r *Registry) fresh() (entity.PaymentMethodSet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.loaded && r.timeProvider.Now().Before(r.expiresAt) {
		return r.snapshot, true
	}
	return entity.PaymentMethodSet{}, false
}

// load must be called with refreshMu held
func (r *Registry) load(ctx context.Context) error {
	methods, err := r.repo.ListActive(ctx)
	if err != nil {
		r.logger.Error("Failed to load payment methods", map[string]any{"error": err.Error()})
		return fmt.Errorf("%w: %v", errs.ErrPaymentMethodsUnavailable, err)
	}

	set := entity.NewPaymentMethodSet(methods)

	r.mu.Lock()
	r.snapshot = set
	r.loaded = true
	r.expiresAt = r.timeProvider.Now().Add(r.ttl)
	r.mu.Unlock()

	r.logger.Debug("Payment methods loaded", map[string]any{"methods": set.Len()})
	return nil
}
