package model

import (
	"time"
)

// RaffleLock represents a draw lock held on a raffle
type RaffleLock struct {
	RaffleID  uint64    `gorm:"primaryKey;autoIncrement:false"`
	Owner     string    `gorm:"size:100;not null"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for RaffleLock
func (RaffleLock) TableName() string {
	return "raffle_locks"
}
