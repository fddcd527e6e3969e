package notification

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/gateway"
)

// LogNotifier writes verification events to the log when no broker is configured
type LogNotifier struct {
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ gateway.Notifier = (*LogNotifier)(nil)

// NewLogNotifier creates a LogNotifier
func NewLogNotifier(timeProvider coreport.TimeProvider, logger coreport.Logger) *LogNotifier {
	return &LogNotifier{timeProvider: timeProvider, logger: logger}
}

// NotifyTransactionVerified logs the event and never fails
func (n *LogNotifier) NotifyTransactionVerified(_ context.Context, transactionID string, tickets []*entity.Ticket, raffle *entity.Raffle) error {
	event := NewTransactionVerifiedEvent(transactionID, tickets, raffle, n.timeProvider.Now())

	n.logger.Info("Transaction verified notification", map[string]any{
		"transaction_id": event.TransactionID,
		"raffle_id":      event.RaffleID,
		"buyer_email":    event.BuyerEmail,
		"numbers":        event.Numbers,
		"total":          event.Total.String(),
	})
	return nil
}
