package notification

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
)

// EventTransactionVerified is the type tag of TransactionVerifiedEvent
const EventTransactionVerified = "transaction.verified"

// TransactionVerifiedEvent summarizes every ticket of one verified transaction
type TransactionVerifiedEvent struct {
	Type          string          `json:"type"`
	TransactionID string          `json:"transactionId"`
	RaffleID      uint64          `json:"raffleId"`
	RaffleTitle   string          `json:"raffleTitle"`
	DrawDate      *time.Time      `json:"drawDate,omitempty"`
	BuyerName     string          `json:"buyerName"`
	BuyerEmail    string          `json:"buyerEmail"`
	Numbers       []int           `json:"numbers"`
	TicketCodes   []string        `json:"ticketCodes"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
	VerifiedBy    string          `json:"verifiedBy"`
	VerifiedAt    time.Time       `json:"verifiedAt"`
	OccurredAt    time.Time       `json:"occurredAt"`
}

// NewTransactionVerifiedEvent builds the event, ordering tickets by number
func NewTransactionVerifiedEvent(transactionID string, tickets []*entity.Ticket, raffle *entity.Raffle, now time.Time) TransactionVerifiedEvent {
	sorted := make([]*entity.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t != nil {
			sorted = append(sorted, t)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })

	event := TransactionVerifiedEvent{
		Type:          EventTransactionVerified,
		TransactionID: transactionID,
		Numbers:       make([]int, 0, len(sorted)),
		TicketCodes:   make([]string, 0, len(sorted)),
		Total:         decimal.Zero,
		OccurredAt:    now.UTC(),
	}
	if raffle != nil {
		event.RaffleID = raffle.ID
		event.RaffleTitle = raffle.Title
		event.DrawDate = raffle.DrawDate
		event.Currency = raffle.Currency
	}

	for _, t := range sorted {
		event.Numbers = append(event.Numbers, t.Number)
		event.TicketCodes = append(event.TicketCodes, t.Code)
		event.Total = event.Total.Add(t.Price)

		if event.BuyerEmail == "" {
			event.BuyerName = t.Buyer.Name
			event.BuyerEmail = t.Buyer.Email
		}
		if event.RaffleID == 0 {
			event.RaffleID = t.RaffleID
		}
		if t.VerifiedAt != nil && t.VerifiedAt.After(event.VerifiedAt) {
			event.VerifiedAt = t.VerifiedAt.UTC()
			event.VerifiedBy = t.VerifiedBy
		}
	}

	return event
}
