package model

import (
	"time"
)

// ActiveRaffleSingletonKey is the only primary key value the active_raffles table ever holds
const ActiveRaffleSingletonKey = "current"

// ActiveRaffle is the singleton row pointing at the raffle shown to buyers
type ActiveRaffle struct {
	SingletonKey string    `gorm:"primaryKey;size:16"`
	RaffleID     uint64    `gorm:"not null"`
	ActivatedBy  string    `gorm:"size:100"`
	ActivatedAt  time.Time `gorm:"not null"`
	Raffle       Raffle    `gorm:"foreignKey:RaffleID;references:ID"`
}

// TableName specifies the table name for ActiveRaffle
func (ActiveRaffle) TableName() string {
	return "active_raffles"
}
