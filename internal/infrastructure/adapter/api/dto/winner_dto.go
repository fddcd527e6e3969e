package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
)

// WinnerResponse represents a drawn winner in API responses
type WinnerResponse struct {
	ID               uint64           `json:"id"`
	RaffleID         uint64           `json:"raffleId"`
	TicketID         uint64           `json:"ticketId"`
	TicketNumber     int              `json:"ticketNumber"`
	TicketCode       string           `json:"ticketCode"`
	Buyer            BuyerResponse    `json:"buyer"`
	PrizeID          *uint64          `json:"prizeId,omitempty"`
	PrizeName        string           `json:"prizeName"`
	PrizeDescription string           `json:"prizeDescription,omitempty"`
	PrizeValue       *decimal.Decimal `json:"prizeValue,omitempty"`
	PrizeCurrency    string           `json:"prizeCurrency,omitempty"`
	PrizePosition    int              `json:"prizePosition"`
	IsPrimary        bool             `json:"isPrimaryWinner"`
	SelectedBy       string           `json:"selectedBy"`
	DrawnAt          time.Time        `json:"drawnAt"`
	Delivered        bool             `json:"delivered"`
	DeliveredAt      *time.Time       `json:"deliveredAt,omitempty"`
	DeliveryNotes    string           `json:"deliveryNotes,omitempty"`
}

// NewWinnerResponse maps a winner entity
func NewWinnerResponse(w *entity.Winner) WinnerResponse {
	resp := WinnerResponse{
		ID:               w.ID,
		RaffleID:         w.RaffleID,
		TicketID:         w.TicketID,
		TicketNumber:     w.TicketNumber,
		TicketCode:       w.TicketCode,
		Buyer:            newBuyerResponse(w.Buyer),
		PrizeID:          w.PrizeID,
		PrizeName:        w.PrizeName,
		PrizeDescription: w.PrizeDescription,
		PrizeCurrency:    w.PrizeCurrency,
		PrizePosition:    w.PrizePosition,
		IsPrimary:        w.IsPrimary,
		SelectedBy:       w.SelectedBy,
		DrawnAt:          w.DrawnAt,
		Delivered:        w.Delivered,
		DeliveredAt:      w.DeliveredAt,
		DeliveryNotes:    w.DeliveryNotes,
	}
	if w.PrizeValue.Valid {
		value := w.PrizeValue.Decimal
		resp.PrizeValue = &value
	}
	return resp
}

// DeliveryRequest updates the delivery status of a winner
type DeliveryRequest struct {
	Delivered   *bool      `json:"delivered" binding:"required"`
	DeliveredAt *time.Time `json:"deliveredAt"`
	Notes       string     `json:"notes" binding:"max=1000"`
}

// ToInput maps the request onto the use case input
func (r DeliveryRequest) ToInput() usecase.DeliveryUpdate {
	return usecase.DeliveryUpdate{Delivered: *r.Delivered, DeliveredAt: r.DeliveredAt, Notes: r.Notes}
}
