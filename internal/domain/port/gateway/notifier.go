package gateway

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
)

// Notifier tells the outside world about purchase events.
// Callers log failures and never roll back on them.
type Notifier interface {
	// NotifyTransactionVerified sends one notification covering every ticket of the transaction
	NotifyTransactionVerified(ctx context.Context, transactionID string, tickets []*entity.Ticket, raffle *entity.Raffle) error
}
