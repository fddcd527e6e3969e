package paymentmethod

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
)

// Service administers payment methods. Every change invalidates the registry.
type Service struct {
	repo         persistence.PaymentMethodRepository
	registry     usecase.PaymentMethodRegistry
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.PaymentMethodUseCase = (*Service)(nil)

// NewService creates a new payment method service
func NewService(repo persistence.PaymentMethodRepository, registry usecase.PaymentMethodRegistry, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{repo: repo, registry: registry, timeProvider: timeProvider, logger: logger}
}

// ListActive returns the methods buyers can choose from, in display order
func (s *Service) ListActive(ctx context.Context) ([]entity.PaymentMethod, error) {
	set, err := s.registry.ListActiveMethods(ctx)
	if err != nil {
		return nil, err
	}
	return set.Methods(), nil
}

// ListAll returns every method, inactive ones included
func (s *Service) ListAll(ctx context.Context) ([]entity.PaymentMethod, error) {
	return s.repo.List(ctx)
}

// Get returns the method with the given code
func (s *Service) Get(ctx context.Context, code string) (*entity.PaymentMethod, error) {
	return s.repo.GetByCode(ctx, entity.NormalizePaymentCode(code))
}

// Create stores a new method. Active and RequiresProof default to true.
func (s *Service) Create(ctx context.Context, input usecase.PaymentMethodInput) (*entity.PaymentMethod, error) {
	now := s.timeProvider.Now()
	method := &entity.PaymentMethod{
		Code:          input.Code,
		Name:          input.Name,
		Active:        true,
		Data:          input.Data,
		RequiresProof: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	apply(method, input)

	if err := method.Validate(); err != nil {
		s.logger.Warn("Invalid payment method", map[string]any{"code": method.Code, "error": err.Error()})
		return nil, err
	}
	if err := s.repo.Create(ctx, method); err != nil {
		return nil, err
	}

	s.registry.Invalidate()
	return method, nil
}

// Update changes the provided fields of a method. The code itself never changes.
func (s *Service) Update(ctx context.Context, code string, input usecase.PaymentMethodInput) (*entity.PaymentMethod, error) {
	method, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		method.Name = input.Name
	}
	if input.Data != nil {
		method.Data = input.Data
	}
	apply(method, input)
	method.UpdatedAt = s.timeProvider.Now()

	if err := method.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, method); err != nil {
		return nil, err
	}

	s.registry.Invalidate()
	return method, nil
}

// Delete removes a method
func (s *Service) Delete(ctx context.Context, code string) error {
	if err := s.repo.Delete(ctx, entity.NormalizePaymentCode(code)); err != nil {
		return err
	}
	s.registry.Invalidate()
	return nil
}

// Toggle flips the active flag of a method
func (s *Service) Toggle(ctx context.Context, code string) (*entity.PaymentMethod, error) {
	method, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	method.Active = !method.Active
	method.UpdatedAt = s.timeProvider.Now()
	if err := s.repo.Update(ctx, method); err != nil {
		return nil, err
	}

	s.registry.Invalidate()
	s.logger.Info("Payment method toggled", map[string]any{"code": method.Code, "active": method.Active})
	return method, nil
}

// apply copies the optional flags of input onto method
func apply(method *entity.PaymentMethod, input usecase.PaymentMethodInput) {
	if input.Active != nil {
		method.Active = *input.Active
	}
	if input.RequiresProof != nil {
		method.RequiresProof = *input.RequiresProof
	}
	if input.RequiresReference != nil {
		method.RequiresReference = *input.RequiresReference
	}
	if input.Order != nil {
		method.Order = *input.Order
	}
}
