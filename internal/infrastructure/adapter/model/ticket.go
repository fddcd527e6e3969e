package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Ticket represents the database model for tickets.
// Uniqueness of (raffle_id, number) and code is created by the migration manager.
type Ticket struct {
	ID               uint64          `gorm:"primaryKey;autoIncrement"`
	Code             string          `gorm:"size:32;not null"`
	RaffleID         uint64          `gorm:"not null;index:idx_tickets_raffle_state,priority:1"`
	Number           int             `gorm:"not null"`
	State            string          `gorm:"size:20;not null;index:idx_tickets_raffle_state,priority:2"`
	BuyerName        string          `gorm:"size:120"`
	BuyerEmail       string          `gorm:"size:160;index"`
	BuyerPhone       string          `gorm:"size:40"`
	BuyerCity        string          `gorm:"size:120"`
	BuyerNationalID  string          `gorm:"size:40"`
	Price            decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PurchasedAt      *time.Time
	PaymentMethod    string `gorm:"size:40"`
	PaymentReference string `gorm:"size:120"`
	TransactionID    string `gorm:"size:160;index"`
	ProofURL         string `gorm:"size:500"`
	ProofStorageID   string `gorm:"size:255"`
	Verified         bool   `gorm:"not null;default:false"`
	VerifiedBy       string `gorm:"size:100"`
	VerifiedAt       *time.Time
	Cancellation     *datatypes.JSON
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}
