package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Winner records a ticket drawn for a prize, with buyer and prize data frozen at draw time
type Winner struct {
	ID               uint64
	RaffleID         uint64
	TicketID         uint64
	TicketNumber     int
	TicketCode       string
	Buyer            Buyer
	PrizeID          *uint64
	PrizeName        string
	PrizeDescription string
	PrizeValue       decimal.NullDecimal
	PrizeCurrency    string
	PrizePosition    int
	IsPrimary        bool
	SelectedBy       string
	DrawnAt          time.Time
	Delivered        bool
	DeliveredAt      *time.Time
	DeliveryNotes    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewWinner snapshots ticket and prize into a winner record
func NewWinner(ticket *Ticket, prize *Prize, selectedBy string, drawnAt time.Time) *Winner {
	w := &Winner{
		RaffleID:         ticket.RaffleID,
		TicketID:         ticket.ID,
		TicketNumber:     ticket.Number,
		TicketCode:       ticket.Code,
		Buyer:            ticket.Buyer,
		PrizeName:        prize.Name,
		PrizeDescription: prize.Description,
		PrizeValue:       prize.Value,
		PrizeCurrency:    prize.Currency,
		PrizePosition:    prize.Position,
		IsPrimary:        prize.IsPrimary(),
		SelectedBy:       selectedBy,
		DrawnAt:          drawnAt,
		CreatedAt:        drawnAt,
		UpdatedAt:        drawnAt,
	}
	if prize.ID != 0 {
		id := prize.ID
		w.PrizeID = &id
	}
	return w
}

// UpdateDelivery sets the delivery flag. The delivery date defaults to now,
// and date and notes are cleared when the prize is marked undelivered.
func (w *Winner) UpdateDelivery(delivered bool, deliveredAt *time.Time, notes string, now time.Time) {
	w.Delivered = delivered
	w.UpdatedAt = now
	if !delivered {
		w.DeliveredAt = nil
		w.DeliveryNotes = ""
		return
	}
	if deliveredAt == nil {
		deliveredAt = &now
	}
	w.DeliveredAt = deliveredAt
	w.DeliveryNotes = notes
}
