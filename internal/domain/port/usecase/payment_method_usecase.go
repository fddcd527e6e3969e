package usecase

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
)

// PaymentMethodRegistry supplies the active payment methods to the purchase flow
type PaymentMethodRegistry interface {
	// ListActiveMethods returns the active methods, refreshing the cached copy when it expired
	//
	// Possible errors:
	// - ErrPaymentMethodsUnavailable: If no snapshot could ever be loaded
	ListActiveMethods(ctx context.Context) (entity.PaymentMethodSet, error)
	// Refresh reloads the methods from storage
	Refresh(ctx context.Context) error
	// Invalidate forces the next read to reload
	Invalidate()
}

// PaymentMethodInput carries the editable fields of a payment method
type PaymentMethodInput struct {
	Code              string
	Name              string
	Active            *bool
	Data              map[string]any
	RequiresProof     *bool
	RequiresReference *bool
	Order             *int
}

// PaymentMethodUseCase administers payment methods
type PaymentMethodUseCase interface {
	ListActive(ctx context.Context) ([]entity.PaymentMethod, error)
	ListAll(ctx context.Context) ([]entity.PaymentMethod, error)
	Get(ctx context.Context, code string) (*entity.PaymentMethod, error)
	Create(ctx context.Context, input PaymentMethodInput) (*entity.PaymentMethod, error)
	Update(ctx context.Context, code string, input PaymentMethodInput) (*entity.PaymentMethod, error)
	Delete(ctx context.Context, code string) error
	Toggle(ctx context.Context, code string) (*entity.PaymentMethod, error)
}
