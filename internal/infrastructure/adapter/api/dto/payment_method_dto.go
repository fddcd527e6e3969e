package dto

import (
	"time"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
)

// PaymentMethodRequest represents a payment method to create or update
type PaymentMethodRequest struct {
	Code              string         `json:"code" binding:"omitempty,max=40"`
	Name              string         `json:"name" binding:"max=120"`
	Active            *bool          `json:"active"`
	Data              map[string]any `json:"data"`
	RequiresProof     *bool          `json:"requiresProof"`
	RequiresReference *bool          `json:"requiresReference"`
	Order             *int           `json:"order"`
}

// ToInput maps the request onto the use case input
func (r PaymentMethodRequest) ToInput() usecase.PaymentMethodInput {
	return usecase.PaymentMethodInput{
		Code:              r.Code,
		Name:              r.Name,
		Active:            r.Active,
		Data:              r.Data,
		RequiresProof:     r.RequiresProof,
		RequiresReference: r.RequiresReference,
		Order:             r.Order,
	}
}

// PaymentMethodResponse represents a payment method in API responses
type PaymentMethodResponse struct {
	Code              string         `json:"code"`
	Name              string         `json:"name"`
	Active            bool           `json:"active"`
	Data              map[string]any `json:"data,omitempty"`
	RequiresProof     bool           `json:"requiresProof"`
	RequiresReference bool           `json:"requiresReference"`
	Order             int            `json:"order"`
	UpdatedAt         *time.Time     `json:"updatedAt,omitempty"`
}

// NewPaymentMethodResponse maps a payment method entity
func NewPaymentMethodResponse(m entity.PaymentMethod) PaymentMethodResponse {
	resp := PaymentMethodResponse{
		Code:              m.Code,
		Name:              m.Name,
		Active:            m.Active,
		Data:              m.Data,
		RequiresProof:     m.RequiresProof,
		RequiresReference: m.RequiresReference,
		Order:             m.Order,
	}
	if !m.UpdatedAt.IsZero() {
		updated := m.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}
