package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
)

// PrizeRequest represents a prize to create or update
type PrizeRequest struct {
	Name        string           `json:"name" binding:"max=200"`
	Description string           `json:"description" binding:"max=2000"`
	Position    int              `json:"position" binding:"omitempty,min=1"`
	Value       *decimal.Decimal `json:"value"`
	Currency    string           `json:"currency" binding:"omitempty,len=3"`
	State       string           `json:"state" binding:"omitempty,oneof=active inactive assigned"`
}

// ToInput maps the request onto the use case input
func (r PrizeRequest) ToInput() usecase.PrizeInput {
	input := usecase.PrizeInput{
		Name:        r.Name,
		Description: r.Description,
		Position:    r.Position,
		Currency:    r.Currency,
		State:       entity.PrizeState(r.State),
	}
	if r.Value != nil {
		input.Value = decimal.NewNullDecimal(*r.Value)
	}
	return input
}

// PrizeBatchRequest creates several prizes at once
type PrizeBatchRequest struct {
	Prizes []PrizeRequest `json:"prizes" binding:"required,min=1,dive"`
}

// AssignPrizeRequest names the ticket a prize goes to
type AssignPrizeRequest struct {
	TicketID uint64 `json:"ticketId" binding:"required"`
}

// PrizeResponse represents a prize in API responses
type PrizeResponse struct {
	ID              uint64           `json:"id"`
	RaffleID        uint64           `json:"raffleId"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	Position        int              `json:"position"`
	Value           *decimal.Decimal `json:"value,omitempty"`
	Currency        string           `json:"currency"`
	WinningTicketID *uint64          `json:"winningTicketId,omitempty"`
	State           string           `json:"state"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// NewPrizeResponse maps a prize entity
func NewPrizeResponse(p *entity.Prize) PrizeResponse {
	resp := PrizeResponse{
		ID:              p.ID,
		RaffleID:        p.RaffleID,
		Name:            p.Name,
		Description:     p.Description,
		Position:        p.Position,
		Currency:        p.Currency,
		WinningTicketID: p.WinningTicketID,
		State:           string(p.State),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.Value.Valid {
		value := p.Value.Decimal
		resp.Value = &value
	}
	return resp
}

// FreePositionsResponse lists prize positions not yet used
type FreePositionsResponse struct {
	RaffleID  uint64 `json:"raffleId"`
	Positions []int  `json:"positions"`
}
