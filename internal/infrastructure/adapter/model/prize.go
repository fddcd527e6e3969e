package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prize represents the database model for prizes
type Prize struct {
	ID              uint64              `gorm:"primaryKey;autoIncrement"`
	RaffleID        uint64              `gorm:"not null;index"`
	Name            string              `gorm:"size:200;not null"`
	Description     string              `gorm:"type:text"`
	Position        int                 `gorm:"not null"`
	Value           decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	Currency        string              `gorm:"size:8"`
	WinningTicketID *uint64
	State           string    `gorm:"size:20;not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for Prize
func (Prize) TableName() string {
	return "prizes"
}
