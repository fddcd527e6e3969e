package entity

import (
	"regexp"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
)

var paymentCodePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,39}$`)

// PaymentMethod describes a way buyers can pay and what evidence it needs
type PaymentMethod struct {
	ID                uint64
	Code              string
	Name              string
	Active            bool
	Data              map[string]any // Free-form account details shown to buyers
	RequiresProof     bool
	RequiresReference bool
	Order             int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NormalizePaymentCode lowercases and trims a payment method code
func NormalizePaymentCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Validate checks the code and name of the payment method
func (m *PaymentMethod) Validate() error {
	m.Code = NormalizePaymentCode(m.Code)
	m.Name = strings.TrimSpace(m.Name)
	if !paymentCodePattern.MatchString(m.Code) {
		return errs.NewValidationError(errs.ErrInvalidPaymentMethod, "code", "must be lowercase letters, digits, '-' or '_'")
	}
	if m.Name == "" {
		return errs.NewValidationError(errs.ErrInvalidPaymentMethod, "name", "is required")
	}
	return nil
}

// PaymentMethodSet is an immutable lookup of active payment methods by code
type PaymentMethodSet struct {
	methods []PaymentMethod
	byCode  map[string]int
}

// NewPaymentMethodSet builds a set from methods, keeping only active ones
func NewPaymentMethodSet(methods []PaymentMethod) PaymentMethodSet {
	set := PaymentMethodSet{byCode: make(map[string]int, len(methods))}
	for _, m := range methods {
		if !m.Active {
			continue
		}
		set.byCode[m.Code] = len(set.methods)
		set.methods = append(set.methods, m)
	}
	return set
}

// Find returns the active method with the given code
func (s PaymentMethodSet) Find(code string) (PaymentMethod, bool) {
	i, ok := s.byCode[NormalizePaymentCode(code)]
	if !ok {
		return PaymentMethod{}, false
	}
	return s.methods[i], true
}

// Len returns the number of active methods
func (s PaymentMethodSet) Len() int {
	return len(s.methods)
}

// Methods returns a copy of the active methods in their original order
func (s PaymentMethodSet) Methods() []PaymentMethod {
	out := make([]PaymentMethod, len(s.methods))
	copy(out, s.methods)
	return out
}
