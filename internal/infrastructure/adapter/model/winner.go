package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Winner represents the database model for drawn winners
type Winner struct {
	ID               uint64 `gorm:"primaryKey;autoIncrement"`
	RaffleID         uint64 `gorm:"not null;index"`
	TicketID         uint64 `gorm:"not null"`
	TicketNumber     int    `gorm:"not null"`
	TicketCode       string `gorm:"size:32"`
	BuyerName        string `gorm:"size:120"`
	BuyerEmail       string `gorm:"size:160"`
	BuyerPhone       string `gorm:"size:40"`
	BuyerCity        string `gorm:"size:120"`
	BuyerNationalID  string `gorm:"size:40"`
	PrizeID          *uint64
	PrizeName        string              `gorm:"size:200;not null"`
	PrizeDescription string              `gorm:"type:text"`
	PrizeValue       decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	PrizeCurrency    string              `gorm:"size:8"`
	PrizePosition    int                 `gorm:"not null"`
	IsPrimary        bool                `gorm:"not null;default:false"`
	SelectedBy       string              `gorm:"size:100"`
	DrawnAt          time.Time           `gorm:"not null"`
	Delivered        bool                `gorm:"not null;default:false"`
	DeliveredAt      *time.Time
	DeliveryNotes    string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for Winner
func (Winner) TableName() string {
	return "winners"
}
