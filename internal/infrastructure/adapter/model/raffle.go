package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Raffle represents the database model for raffles
type Raffle struct {
	ID                uint64              `gorm:"primaryKey;autoIncrement"`
	Title             string              `gorm:"size:200;not null"`
	Description       string              `gorm:"type:text"`
	Price             decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	SecondaryPrice    decimal.NullDecimal `gorm:"type:decimal(16,2)"`
	Currency          string              `gorm:"size:8;not null"`
	SecondaryCurrency string              `gorm:"size:8"`
	TotalTickets      int                 `gorm:"not null"`
	SoldTickets       int                 `gorm:"not null;default:0;check:chk_raffles_sold_range,sold_tickets >= 0 AND sold_tickets <= total_tickets"`
	State             string              `gorm:"size:20;not null;index"`
	DrawDate          *time.Time
	ImageURL          string    `gorm:"size:500"`
	OwnerID           string    `gorm:"size:100"`
	CreatedAt         time.Time `gorm:"not null;index"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName specifies the table name for Raffle
func (Raffle) TableName() string {
	return "raffles"
}
