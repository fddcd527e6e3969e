package persistence

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
)

// PaymentMethodRepository defines methods to interact with payment method records
type PaymentMethodRepository interface {
	// ListActive returns active methods ordered by their display order
	ListActive(ctx context.Context) ([]entity.PaymentMethod, error)

	// List returns every method ordered by display order
	List(ctx context.Context) ([]entity.PaymentMethod, error)

	// GetByCode returns the method with the given code
	//
	// Possible errors:
	// - ErrPaymentMethodNotFound: If no method has that code
	GetByCode(ctx context.Context, code string) (*entity.PaymentMethod, error)

	// Create stores a new method
	//
	// Possible errors:
	// - ErrDuplicatePaymentMethod: If the code is already used
	Create(ctx context.Context, method *entity.PaymentMethod) error

	Update(ctx context.Context, method *entity.PaymentMethod) error
	Delete(ctx context.Context, code string) error
}
