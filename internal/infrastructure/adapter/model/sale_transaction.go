package model

import (
	"time"
)

// SaleTransaction records every transaction id a sale has used. The primary key keeps ids unique
// across raffles, and rows survive cancellation so a retired id is never handed out again.
type SaleTransaction struct {
	TransactionID string    `gorm:"primaryKey;size:160"`
	RaffleID      uint64    `gorm:"not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for SaleTransaction
func (SaleTransaction) TableName() string {
	return "sale_transactions"
}
