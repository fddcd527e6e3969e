package entity

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is the derived view of all tickets sharing one transaction id
type Purchase struct {
	TransactionID string
	RaffleID      uint64
	Buyer         Buyer
	Payment       PaymentInfo
	Proof         ProofRef
	Verified      bool
	VerifiedBy    string
	VerifiedAt    *time.Time
	PurchasedAt   *time.Time
	Numbers       []int
	TicketIDs     []uint64
	Total         decimal.Decimal
}

// CancelledPurchase is the audit view of a cancelled transaction rebuilt from cancellation records
type CancelledPurchase struct {
	OriginalTransactionID string
	RaffleID              uint64
	Buyer                 Buyer
	Payment               PaymentInfo
	Reason                string
	CancelledBy           string
	CancelledAt           time.Time
	Numbers               []int
	Total                 decimal.Decimal
}

// GroupPurchases folds tickets into purchases keyed by transaction id.
// Purchases keep the order in which their first ticket appears.
func GroupPurchases(tickets []*Ticket) []*Purchase {
	index := make(map[string]*Purchase)
	purchases := make([]*Purchase, 0)

	for _, t := range tickets {
		if t.TransactionID == "" || !t.IsHeld() {
			continue
		}
		p, ok := index[t.TransactionID]
		if !ok {
			p = &Purchase{
				TransactionID: t.TransactionID,
				RaffleID:      t.RaffleID,
				Buyer:         t.Buyer,
				Payment:       t.Payment,
				Proof:         t.Proof,
				Verified:      true,
				VerifiedBy:    t.VerifiedBy,
				VerifiedAt:    t.VerifiedAt,
				PurchasedAt:   t.PurchasedAt,
				Total:         decimal.Zero,
			}
			index[t.TransactionID] = p
			purchases = append(purchases, p)
		}
		p.Numbers = append(p.Numbers, t.Number)
		p.TicketIDs = append(p.TicketIDs, t.ID)
		p.Total = p.Total.Add(t.Price)
		p.Verified = p.Verified && t.Verified
	}

	for _, p := range purchases {
		sort.Ints(p.Numbers)
	}
	return purchases
}

// GroupCancelledPurchases folds cancellation records into purchases keyed by the original transaction id
func GroupCancelledPurchases(tickets []*Ticket) []*CancelledPurchase {
	index := make(map[string]*CancelledPurchase)
	result := make([]*CancelledPurchase, 0)

	for _, t := range tickets {
		rec := t.Cancellation
		if rec == nil {
			continue
		}
		c, ok := index[rec.PreviousTransactionID]
		if !ok {
			c = &CancelledPurchase{
				OriginalTransactionID: rec.PreviousTransactionID,
				RaffleID:              t.RaffleID,
				Buyer:                 rec.Buyer,
				Payment:               rec.Payment,
				Reason:                rec.Reason,
				CancelledBy:           rec.CancelledBy,
				CancelledAt:           rec.CancelledAt,
				Total:                 decimal.Zero,
			}
			index[rec.PreviousTransactionID] = c
			result = append(result, c)
		}
		c.Numbers = append(c.Numbers, t.Number)
		c.Total = c.Total.Add(rec.Price)
	}

	for _, c := range result {
		sort.Ints(c.Numbers)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CancelledAt.After(result[j].CancelledAt)
	})
	return result
}
