package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/shopspring/decimal"
)

// RaffleState represents the lifecycle state of a raffle
type RaffleState string

// Raffle states
const (
	RaffleActive    RaffleState = "active"
	RafflePaused    RaffleState = "paused"
	RaffleFinished  RaffleState = "finished"
	RaffleCancelled RaffleState = "cancelled"
)

// DefaultCurrency is used when a raffle is created without a currency
const DefaultCurrency = "USD"

// Raffle holds the ticket counters and lifecycle state of one raffle
type Raffle struct {
	ID                uint64
	Title             string
	Description       string
	Price             decimal.Decimal     // Ticket price in Currency
	SecondaryPrice    decimal.NullDecimal // Optional ticket price in SecondaryCurrency
	Currency          string
	SecondaryCurrency string
	TotalTickets      int
	SoldTickets       int // Mutated only through the allocation engine's counter updates
	State             RaffleState
	DrawDate          *time.Time
	ImageURL          string
	OwnerID           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RaffleStats aggregates raffle counts per state
type RaffleStats struct {
	Total       int64 `json:"total"`
	Active      int64 `json:"active"`
	Paused      int64 `json:"paused"`
	Finished    int64 `json:"finished"`
	Cancelled   int64 `json:"cancelled"`
	TicketsSold int64 `json:"ticketsSold"`
}

// SoldCounterReport compares a raffle's sold counter with its held ticket rows
type SoldCounterReport struct {
	RaffleID    uint64 `json:"raffleId"`
	SoldCounter int    `json:"soldCounter"`
	HeldTickets int64  `json:"heldTickets"`
	Consistent  bool   `json:"consistent"`
}

// NewRaffle creates a raffle in the given initial state (active when empty)
func NewRaffle(
	title string,
	description string,
	price decimal.Decimal,
	currency string,
	totalTickets int,
	initialState RaffleState,
	ownerID string,
	now time.Time,
) (*Raffle, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errs.NewValidationError(errs.ErrInvalidRaffle, "title", "is required")
	}
	if price.IsNegative() {
		return nil, errs.NewValidationError(errs.ErrInvalidRaffle, "price", "must not be negative")
	}
	if totalTickets < 1 {
		return nil, errs.NewValidationError(errs.ErrInvalidRaffle, "totalTickets", "must be at least 1")
	}
	if initialState == "" {
		initialState = RaffleActive
	}
	if initialState != RaffleActive && initialState != RafflePaused {
		return nil, errs.NewValidationError(errs.ErrInvalidRaffle, "state", "must be active or paused")
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Raffle{
		Title:        title,
		Description:  description,
		Price:        price,
		Currency:     strings.ToUpper(currency),
		TotalTickets: totalTickets,
		State:        initialState,
		OwnerID:      ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Available returns the number of tickets that can still be sold
func (r *Raffle) Available() int {
	if r.SoldTickets >= r.TotalTickets {
		return 0
	}
	return r.TotalTickets - r.SoldTickets
}

// Progress returns the sold percentage rounded to two decimals
func (r *Raffle) Progress() float64 {
	if r.TotalTickets == 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(r.SoldTickets)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(r.TotalTickets))).
		Round(2)
	f, _ := pct.Float64()
	return f
}

// IsSelling reports whether tickets can currently be bought
func (r *Raffle) IsSelling() bool {
	return r.State == RaffleActive
}

// CanSell reports whether count more tickets can be sold right now
func (r *Raffle) CanSell(count int) bool {
	return r.IsSelling() && count > 0 && count <= r.Available()
}

// ValidateNumber checks that number lies within 1..TotalTickets
func (r *Raffle) ValidateNumber(number int) error {
	if number < 1 || number > r.TotalTickets {
		return errs.NewNumberError(r.ID, number, errs.ErrNumberOutOfRange)
	}
	return nil
}

// TransitionTo moves the raffle to another lifecycle state.
// Cancelled is terminal; finished can only be cancelled.
func (r *Raffle) TransitionTo(next RaffleState, now time.Time) error {
	if r.State == next {
		return nil
	}

	allowed := false
	switch r.State {
	case RaffleActive:
		allowed = next == RafflePaused || next == RaffleFinished || next == RaffleCancelled
	case RafflePaused:
		allowed = next == RaffleActive || next == RaffleFinished || next == RaffleCancelled
	case RaffleFinished:
		allowed = next == RaffleCancelled
	}
	if !allowed {
		return fmt.Errorf("%w: raffle %s -> %s", errs.ErrInvalidStateTransition, r.State, next)
	}

	r.State = next
	r.UpdatedAt = now
	return nil
}

// IsValidRaffleState reports whether s names a known raffle state
func IsValidRaffleState(s string) bool {
	switch RaffleState(s) {
	case RaffleActive, RafflePaused, RaffleFinished, RaffleCancelled:
		return true
	}
	return false
}
