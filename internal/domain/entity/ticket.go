package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/shopspring/decimal"
)

// TicketState represents where a ticket is in its lifecycle
type TicketState string

// Ticket states
const (
	TicketAvailable TicketState = "available"
	TicketReserved  TicketState = "reserved"
	TicketSold      TicketState = "sold"
	TicketWinner    TicketState = "winner"
)

// CancelledTransactionPrefix marks transaction ids retired by a cancellation
const CancelledTransactionPrefix = "CANCELLED_"

// Buyer is the snapshot of buyer data captured at sale time
type Buyer struct {
	Name       string `json:"name" validate:"required,max=120"`
	Email      string `json:"email" validate:"required,email,max=160"`
	Phone      string `json:"phone,omitempty" validate:"max=40"`
	City       string `json:"city" validate:"required,max=120"`
	NationalID string `json:"nationalId,omitempty" validate:"max=40"`
}

// Normalize trims whitespace and lowercases the email
func (b Buyer) Normalize() Buyer {
	return Buyer{
		Name:       strings.TrimSpace(b.Name),
		Email:      strings.ToLower(strings.TrimSpace(b.Email)),
		Phone:      strings.TrimSpace(b.Phone),
		City:       strings.TrimSpace(b.City),
		NationalID: strings.TrimSpace(b.NationalID),
	}
}

// PaymentInfo identifies how a purchase was paid
type PaymentInfo struct {
	MethodCode string `json:"method"`
	Reference  string `json:"reference,omitempty"`
}

// ProofRef points at a stored proof-of-payment file
type ProofRef struct {
	URL       string `json:"url,omitempty"`
	StorageID string `json:"storageId,omitempty"`
}

// IsZero reports whether no proof is attached
func (p ProofRef) IsZero() bool {
	return p.URL == "" && p.StorageID == ""
}

// Sale carries everything written onto a ticket when it is sold
type Sale struct {
	TransactionID string
	Buyer         Buyer
	Payment       PaymentInfo
	Proof         ProofRef
	Price         decimal.Decimal
	PurchasedAt   time.Time
}

// CancellationRecord preserves the pre-cancellation data of a ticket for audit
type CancellationRecord struct {
	PreviousTransactionID string          `json:"previousTransactionId"`
	Buyer                 Buyer           `json:"buyer"`
	Payment               PaymentInfo     `json:"payment"`
	Proof                 ProofRef        `json:"proof"`
	Price                 decimal.Decimal `json:"price"`
	PurchasedAt           *time.Time      `json:"purchasedAt,omitempty"`
	Verified              bool            `json:"verified"`
	VerifiedBy            string          `json:"verifiedBy,omitempty"`
	VerifiedAt            *time.Time      `json:"verifiedAt,omitempty"`
	Reason                string          `json:"reason"`
	CancelledBy           string          `json:"cancelledBy"`
	CancelledAt           time.Time       `json:"cancelledAt"`
}

// Ticket is one numbered ticket of a raffle
type Ticket struct {
	ID            uint64
	Code          string
	Number        int
	RaffleID      uint64
	State         TicketState
	Buyer         Buyer
	Price         decimal.Decimal
	PurchasedAt   *time.Time
	Payment       PaymentInfo
	TransactionID string
	Proof         ProofRef
	Verified      bool
	VerifiedBy    string
	VerifiedAt    *time.Time
	Cancellation  *CancellationRecord
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSoldTicket materializes a ticket row for a number that has never been sold
func NewSoldTicket(raffleID uint64, number int, code string, sale Sale) *Ticket {
	purchasedAt := sale.PurchasedAt
	return &Ticket{
		Code:          code,
		Number:        number,
		RaffleID:      raffleID,
		State:         TicketSold,
		Buyer:         sale.Buyer,
		Payment:       sale.Payment,
		Proof:         sale.Proof,
		Price:         sale.Price,
		TransactionID: sale.TransactionID,
		PurchasedAt:   &purchasedAt,
		CreatedAt:     purchasedAt,
		UpdatedAt:     purchasedAt,
	}
}

// IsAvailable reports whether the ticket's number may be sold
func (t *Ticket) IsAvailable() bool {
	return t.State == TicketAvailable
}

// IsHeld reports whether the number is taken by a buyer
func (t *Ticket) IsHeld() bool {
	return t.State == TicketSold || t.State == TicketReserved || t.State == TicketWinner
}

// IsEligibleForDraw reports whether the ticket may be drawn as a winner
func (t *Ticket) IsEligibleForDraw() bool {
	return t.State == TicketSold && t.Verified
}

// Sell moves an available ticket to sold with the given sale data.
// Any cancellation record from an earlier purchase is cleared.
func (t *Ticket) Sell(sale Sale) error {
	if !t.IsAvailable() {
		return errs.NewNumberError(t.RaffleID, t.Number, errs.ErrNumberUnavailable)
	}

	purchasedAt := sale.PurchasedAt
	t.State = TicketSold
	t.Buyer = sale.Buyer
	t.Payment = sale.Payment
	t.Proof = sale.Proof
	t.Price = sale.Price
	t.TransactionID = sale.TransactionID
	t.PurchasedAt = &purchasedAt
	t.Verified = false
	t.VerifiedBy = ""
	t.VerifiedAt = nil
	t.Cancellation = nil
	t.UpdatedAt = purchasedAt
	return nil
}

// Verify marks a sold ticket as verified. It returns false when the ticket was already verified.
func (t *Ticket) Verify(by string, at time.Time) (bool, error) {
	if t.State != TicketSold && t.State != TicketWinner {
		return false, fmt.Errorf("%w: ticket %d is %s", errs.ErrInvalidStateTransition, t.ID, t.State)
	}
	if t.Verified {
		return false, nil
	}
	t.Verified = true
	t.VerifiedBy = by
	t.VerifiedAt = &at
	t.UpdatedAt = at
	return true, nil
}

// Cancel releases a sold ticket back to available, keeping the sale in a CancellationRecord
// and retiring the transaction id under cancellationID.
func (t *Ticket) Cancel(reason, actor, cancellationID string, at time.Time) error {
	if t.State != TicketSold {
		return fmt.Errorf("%w: ticket %d is %s", errs.ErrInvalidStateTransition, t.ID, t.State)
	}

	t.Cancellation = &CancellationRecord{
		PreviousTransactionID: t.TransactionID,
		Buyer:                 t.Buyer,
		Payment:               t.Payment,
		Proof:                 t.Proof,
		Price:                 t.Price,
		PurchasedAt:           t.PurchasedAt,
		Verified:              t.Verified,
		VerifiedBy:            t.VerifiedBy,
		VerifiedAt:            t.VerifiedAt,
		Reason:                reason,
		CancelledBy:           actor,
		CancelledAt:           at,
	}

	t.State = TicketAvailable
	t.Buyer = Buyer{}
	t.Payment = PaymentInfo{}
	t.Proof = ProofRef{}
	t.Price = decimal.Zero
	t.PurchasedAt = nil
	t.Verified = false
	t.VerifiedBy = ""
	t.VerifiedAt = nil
	t.TransactionID = cancellationID
	t.UpdatedAt = at
	return nil
}

// MarkWinner moves a verified sold ticket to winner
func (t *Ticket) MarkWinner(at time.Time) error {
	if !t.IsEligibleForDraw() {
		return fmt.Errorf("%w: ticket %d is not eligible to win", errs.ErrInvalidStateTransition, t.ID)
	}
	t.State = TicketWinner
	t.UpdatedAt = at
	return nil
}

// CancellationTransactionID builds the synthetic id that replaces a cancelled transaction id
func CancellationTransactionID(at time.Time, originalID string) string {
	return fmt.Sprintf("%s%d_%s", CancelledTransactionPrefix, at.UnixMilli(), originalID)
}

// IsCancellationTransactionID reports whether id was produced by CancellationTransactionID
func IsCancellationTransactionID(id string) bool {
	return strings.HasPrefix(id, CancelledTransactionPrefix)
}

// IsValidTicketState reports whether s names a known ticket state
func IsValidTicketState(s string) bool {
	switch TicketState(s) {
	case TicketAvailable, TicketReserved, TicketSold, TicketWinner:
		return true
	}
	return false
}
