package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
)

// BuyerRequest carries the buyer fields of a purchase
type BuyerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	NationalID string `json:"nationalId"`
}

// PurchaseRequest is the JSON document sent in the "purchase" form field
type PurchaseRequest struct {
	Numbers          []int        `json:"numbers" binding:"required,min=1"`
	Buyer            BuyerRequest `json:"buyer"`
	PaymentMethod    string       `json:"paymentMethod" binding:"required"`
	PaymentReference string       `json:"paymentReference"`
	TransactionID    string       `json:"transactionId" binding:"omitempty,max=120"`
}

// ToInput maps the request onto the use case input
func (r PurchaseRequest) ToInput(raffleID uint64, proof *gateway.ProofFile) usecase.PurchaseRequest {
	return usecase.PurchaseRequest{
		RaffleID: raffleID,
		Numbers:  r.Numbers,
		Buyer: entity.Buyer{
			Name:       r.Buyer.Name,
			Email:      r.Buyer.Email,
			Phone:      r.Buyer.Phone,
			City:       r.Buyer.City,
			NationalID: r.Buyer.NationalID,
		},
		PaymentMethod:    r.PaymentMethod,
		PaymentReference: r.PaymentReference,
		TransactionID:    r.TransactionID,
		Proof:            proof,
	}
}

// BuyerResponse represents buyer data in API responses
type BuyerResponse struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	City       string `json:"city"`
	NationalID string `json:"nationalId,omitempty"`
}

func newBuyerResponse(b entity.Buyer) BuyerResponse {
	return BuyerResponse(b)
}

// PaymentResponse represents payment data in API responses
type PaymentResponse struct {
	Method    string `json:"method"`
	Reference string `json:"reference,omitempty"`
	ProofURL  string `json:"proofUrl,omitempty"`
}

// TicketResponse represents a ticket in API responses
type TicketResponse struct {
	ID            uint64           `json:"id"`
	Code          string           `json:"code"`
	Number        int              `json:"number"`
	RaffleID      uint64           `json:"raffleId"`
	State         string           `json:"state"`
	Buyer         *BuyerResponse   `json:"buyer,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	Payment       *PaymentResponse `json:"payment,omitempty"`
	TransactionID string           `json:"transactionId,omitempty"`
	Verified      bool             `json:"verified"`
	VerifiedBy    string           `json:"verifiedBy,omitempty"`
	VerifiedAt    *time.Time       `json:"verifiedAt,omitempty"`
	PurchasedAt   *time.Time       `json:"purchasedAt,omitempty"`
	Cancelled     bool             `json:"cancelled"`
}

// NewTicketResponse maps a ticket entity
func NewTicketResponse(t *entity.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:            t.ID,
		Code:          t.Code,
		Number:        t.Number,
		RaffleID:      t.RaffleID,
		State:         string(t.State),
		Price:         t.Price,
		TransactionID: t.TransactionID,
		Verified:      t.Verified,
		VerifiedBy:    t.VerifiedBy,
		VerifiedAt:    t.VerifiedAt,
		PurchasedAt:   t.PurchasedAt,
		Cancelled:     t.Cancellation != nil,
	}
	if t.Buyer.Email != "" {
		buyer := newBuyerResponse(t.Buyer)
		resp.Buyer = &buyer
	}
	if t.Payment.MethodCode != "" {
		resp.Payment = &PaymentResponse{Method: t.Payment.MethodCode, Reference: t.Payment.Reference, ProofURL: t.Proof.URL}
	}
	return resp
}

// PurchaseResponse is returned after a successful purchase
type PurchaseResponse struct {
	TransactionID string           `json:"transactionId"`
	Tickets       []TicketResponse `json:"tickets"`
	Total         decimal.Decimal  `json:"total"`
}

// NewPurchaseResponse maps a purchase result
func NewPurchaseResponse(r *usecase.PurchaseResult) PurchaseResponse {
	return PurchaseResponse{
		TransactionID: r.TransactionID,
		Tickets:       MapSlice(r.Tickets, NewTicketResponse),
		Total:         r.Total,
	}
}

// PurchaseSummaryResponse is the grouped view of one transaction
type PurchaseSummaryResponse struct {
	TransactionID string          `json:"transactionId"`
	RaffleID      uint64          `json:"raffleId"`
	Buyer         BuyerResponse   `json:"buyer"`
	Payment       PaymentResponse `json:"payment"`
	Verified      bool            `json:"verified"`
	VerifiedBy    string          `json:"verifiedBy,omitempty"`
	VerifiedAt    *time.Time      `json:"verifiedAt,omitempty"`
	PurchasedAt   *time.Time      `json:"purchasedAt,omitempty"`
	Numbers       []int           `json:"numbers"`
	TicketIDs     []uint64        `json:"ticketIds"`
	Total         decimal.Decimal `json:"total"`
}

// NewPurchaseSummaryResponse maps a grouped purchase
func NewPurchaseSummaryResponse(p *entity.Purchase) PurchaseSummaryResponse {
	return PurchaseSummaryResponse{
		TransactionID: p.TransactionID,
		RaffleID:      p.RaffleID,
		Buyer:         newBuyerResponse(p.Buyer),
		Payment:       PaymentResponse{Method: p.Payment.MethodCode, Reference: p.Payment.Reference, ProofURL: p.Proof.URL},
		Verified:      p.Verified,
		VerifiedBy:    p.VerifiedBy,
		VerifiedAt:    p.VerifiedAt,
		PurchasedAt:   p.PurchasedAt,
		Numbers:       p.Numbers,
		TicketIDs:     p.TicketIDs,
		Total:         p.Total,
	}
}

// CancelledPurchaseResponse is the audit view of a cancelled transaction
type CancelledPurchaseResponse struct {
	OriginalTransactionID string          `json:"originalTransactionId"`
	RaffleID              uint64          `json:"raffleId"`
	Buyer                 BuyerResponse   `json:"buyer"`
	PaymentMethod         string          `json:"paymentMethod"`
	Reason                string          `json:"reason"`
	CancelledBy           string          `json:"cancelledBy"`
	CancelledAt           time.Time       `json:"cancelledAt"`
	Numbers               []int           `json:"numbers"`
	Total                 decimal.Decimal `json:"total"`
}

// NewCancelledPurchaseResponse maps a cancelled purchase
func NewCancelledPurchaseResponse(p *entity.CancelledPurchase) CancelledPurchaseResponse {
	return CancelledPurchaseResponse{
		OriginalTransactionID: p.OriginalTransactionID,
		RaffleID:              p.RaffleID,
		Buyer:                 newBuyerResponse(p.Buyer),
		PaymentMethod:         p.Payment.MethodCode,
		Reason:                p.Reason,
		CancelledBy:           p.CancelledBy,
		CancelledAt:           p.CancelledAt,
		Numbers:               p.Numbers,
		Total:                 p.Total,
	}
}

// CancelTransactionRequest carries the reason of a cancellation
type CancelTransactionRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// VerifyTransactionResponse lists the tickets of a verified transaction
type VerifyTransactionResponse struct {
	TransactionID string           `json:"transactionId"`
	Tickets       []TicketResponse `json:"tickets"`
}

// TicketListQuery binds the admin ticket listing filters
type TicketListQuery struct {
	PageQuery
	State    string `form:"state"`
	Verified *bool  `form:"verified"`
	City     string `form:"city"`
}

// Filter maps the query onto the use case filter
func (q TicketListQuery) Filter() usecase.TicketListFilter {
	return usecase.TicketListFilter{State: q.State, Verified: q.Verified, City: q.City}
}

// NumbersResponse lists ticket numbers of a raffle
type NumbersResponse struct {
	RaffleID uint64 `json:"raffleId"`
	Numbers  []int  `json:"numbers"`
	Count    int    `json:"count"`
}

// NumberAvailabilityResponse answers whether one number can be bought
type NumberAvailabilityResponse struct {
	RaffleID  uint64 `json:"raffleId"`
	Number    int    `json:"number"`
	Available bool   `json:"available"`
}
