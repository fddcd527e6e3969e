package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
)

// CreateRaffleRequest represents the API request for creating a raffle
type CreateRaffleRequest struct {
	Title             string           `json:"title" binding:"required,max=200"`
	Description       string           `json:"description" binding:"max=4000"`
	Price             decimal.Decimal  `json:"price"`
	SecondaryPrice    *decimal.Decimal `json:"secondaryPrice"`
	Currency          string           `json:"currency" binding:"omitempty,len=3"`
	SecondaryCurrency string           `json:"secondaryCurrency" binding:"omitempty,len=3"`
	TotalTickets      int              `json:"totalTickets" binding:"required,min=1"`
	State             string           `json:"state" binding:"omitempty,oneof=active paused"`
	DrawDate          *time.Time       `json:"drawDate"`
	ImageURL          string           `json:"imageUrl" binding:"omitempty,max=500"`
}

// ToInput maps the request onto the use case input
func (r CreateRaffleRequest) ToInput(ownerID string) usecase.CreateRaffleInput {
	input := usecase.CreateRaffleInput{
		Title:             r.Title,
		Description:       r.Description,
		Price:             r.Price,
		Currency:          r.Currency,
		SecondaryCurrency: r.SecondaryCurrency,
		TotalTickets:      r.TotalTickets,
		State:             entity.RaffleState(r.State),
		DrawDate:          r.DrawDate,
		ImageURL:          r.ImageURL,
		OwnerID:           ownerID,
	}
	if r.SecondaryPrice != nil {
		input.SecondaryPrice = decimal.NewNullDecimal(*r.SecondaryPrice)
	}
	return input
}

// UpdateRaffleRequest represents a partial raffle update. Omitted fields stay unchanged.
type UpdateRaffleRequest struct {
	Title          *string          `json:"title" binding:"omitempty,max=200"`
	Description    *string          `json:"description" binding:"omitempty,max=4000"`
	Price          *decimal.Decimal `json:"price"`
	SecondaryPrice *decimal.Decimal `json:"secondaryPrice"`
	DrawDate       *time.Time       `json:"drawDate"`
	ImageURL       *string          `json:"imageUrl" binding:"omitempty,max=500"`
	State          *string          `json:"state" binding:"omitempty,oneof=active paused finished cancelled"`
}

// ToInput maps the request onto the use case input
func (r UpdateRaffleRequest) ToInput() usecase.UpdateRaffleInput {
	input := usecase.UpdateRaffleInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		DrawDate:    r.DrawDate,
		ImageURL:    r.ImageURL,
	}
	if r.SecondaryPrice != nil {
		secondary := decimal.NewNullDecimal(*r.SecondaryPrice)
		input.SecondaryPrice = &secondary
	}
	if r.State != nil {
		state := entity.RaffleState(*r.State)
		input.State = &state
	}
	return input
}

// RaffleListQuery binds the raffle listing filters
type RaffleListQuery struct {
	PageQuery
	State string `form:"state"`
}

// RaffleResponse represents a raffle in API responses
type RaffleResponse struct {
	ID                uint64           `json:"id"`
	Title             string           `json:"title"`
	Description       string           `json:"description,omitempty"`
	Price             decimal.Decimal  `json:"price"`
	SecondaryPrice    *decimal.Decimal `json:"secondaryPrice,omitempty"`
	Currency          string           `json:"currency"`
	SecondaryCurrency string           `json:"secondaryCurrency,omitempty"`
	TotalTickets      int              `json:"totalTickets"`
	SoldTickets       int              `json:"soldTickets"`
	AvailableTickets  int              `json:"availableTickets"`
	Progress          float64          `json:"progress"`
	State             string           `json:"state"`
	DrawDate          *time.Time       `json:"drawDate,omitempty"`
	ImageURL          string           `json:"imageUrl,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// NewRaffleResponse maps a raffle entity
func NewRaffleResponse(r *entity.Raffle) RaffleResponse {
	resp := RaffleResponse{
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		Price:             r.Price,
		Currency:          r.Currency,
		SecondaryCurrency: r.SecondaryCurrency,
		TotalTickets:      r.TotalTickets,
		SoldTickets:       r.SoldTickets,
		AvailableTickets:  r.Available(),
		Progress:          r.Progress(),
		State:             string(r.State),
		DrawDate:          r.DrawDate,
		ImageURL:          r.ImageURL,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.SecondaryPrice.Valid {
		secondary := r.SecondaryPrice.Decimal
		resp.SecondaryPrice = &secondary
	}
	return resp
}

// ActiveRaffleResponse represents the raffle currently shown to buyers
type ActiveRaffleResponse struct {
	ActivatedBy string          `json:"activatedBy"`
	ActivatedAt time.Time       `json:"activatedAt"`
	Raffle      *RaffleResponse `json:"raffle"`
}

// NewActiveRaffleResponse maps the active raffle pointer
func NewActiveRaffleResponse(a *entity.ActiveRaffle) ActiveRaffleResponse {
	resp := ActiveRaffleResponse{ActivatedBy: a.ActivatedBy, ActivatedAt: a.ActivatedAt}
	if a.Raffle != nil {
		raffle := NewRaffleResponse(a.Raffle)
		resp.Raffle = &raffle
	}
	return resp
}

// CanSellResponse answers whether a raffle can sell a number of tickets
type CanSellResponse struct {
	RaffleID uint64 `json:"raffleId"`
	Count    int    `json:"count"`
	CanSell  bool   `json:"canSell"`
}
