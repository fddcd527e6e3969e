package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/shopspring/decimal"
)

// PrizeState represents the state of a prize
type PrizeState string

// Prize states
const (
	PrizeActive   PrizeState = "active"
	PrizeInactive PrizeState = "inactive"
	PrizeAssigned PrizeState = "assigned"
)

// DefaultPrizeName labels the synthesized prize of a single-winner draw
const DefaultPrizeName = "Main Prize"

// Prize is a reward attached to a 1-based position of a raffle
type Prize struct {
	ID              uint64
	RaffleID        uint64
	Name            string
	Description     string
	Position        int
	Value           decimal.NullDecimal
	Currency        string
	WinningTicketID *uint64
	State           PrizeState
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewPrize creates an active prize for a raffle position
func NewPrize(raffleID uint64, name, description string, position int, value decimal.NullDecimal, currency string, now time.Time) (*Prize, error) {
	name = strings.TrimSpace(name)
	if raffleID == 0 {
		return nil, errs.NewValidationError(errs.ErrInvalidPrize, "raffleId", "is required")
	}
	if name == "" {
		return nil, errs.NewValidationError(errs.ErrInvalidPrize, "name", "is required")
	}
	if position < 1 {
		return nil, errs.NewValidationError(errs.ErrInvalidPrize, "position", "must be at least 1")
	}
	if value.Valid && value.Decimal.IsNegative() {
		return nil, errs.NewValidationError(errs.ErrInvalidPrize, "value", "must not be negative")
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Prize{
		RaffleID:    raffleID,
		Name:        name,
		Description: description,
		Position:    position,
		Value:       value,
		Currency:    strings.ToUpper(currency),
		State:       PrizeActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsPrimary reports whether this is the first-position prize
func (p *Prize) IsPrimary() bool {
	return p.Position == 1
}

// Assign records the winning ticket and moves the prize to assigned
func (p *Prize) Assign(ticketID uint64, now time.Time) error {
	switch p.State {
	case PrizeAssigned:
		return errs.ErrPrizeAlreadyAssigned
	case PrizeInactive:
		return fmt.Errorf("%w: prize %d is inactive", errs.ErrInvalidStateTransition, p.ID)
	}
	p.WinningTicketID = &ticketID
	p.State = PrizeAssigned
	p.UpdatedAt = now
	return nil
}

// Unassign clears the winning ticket of an assigned prize
func (p *Prize) Unassign(now time.Time) error {
	if p.State != PrizeAssigned {
		return fmt.Errorf("%w: prize %d is not assigned", errs.ErrInvalidStateTransition, p.ID)
	}
	p.WinningTicketID = nil
	p.State = PrizeActive
	p.UpdatedAt = now
	return nil
}

// IsValidPrizeState reports whether s names a known prize state
func IsValidPrizeState(s string) bool {
	switch PrizeState(s) {
	case PrizeActive, PrizeInactive, PrizeAssigned:
		return true
	}
	return false
}
