package model

import (
	"time"

	"gorm.io/datatypes"
)

// PaymentMethod represents the database model for payment methods
type PaymentMethod struct {
	ID                uint64 `gorm:"primaryKey;autoIncrement"`
	Code              string `gorm:"size:40;not null;uniqueIndex:idx_payment_methods_code"`
	Name              string `gorm:"size:120;not null"`
	Active            bool   `gorm:"not null"`
	Data              datatypes.JSONMap
	RequiresProof     bool      `gorm:"not null"`
	RequiresReference bool      `gorm:"not null"`
	SortOrder         int       `gorm:"not null;default:0"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName specifies the table name for PaymentMethod
func (PaymentMethod) TableName() string {
	return "payment_methods"
}
