package entity

import "time"

// ActiveRaffle is the singleton pointer to the raffle shown to buyers
type ActiveRaffle struct {
	RaffleID    uint64
	ActivatedBy string
	ActivatedAt time.Time
	Raffle      *Raffle
}
