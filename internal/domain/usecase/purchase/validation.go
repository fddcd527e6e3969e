package purchase

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/allocation"
	"github.com/go-playground/validator/v10"
)

// DefaultMaxNumbers caps how many numbers one purchase may ask for
const DefaultMaxNumbers = 100

var transactionIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.:-]{0,63}$`)

// Validator checks purchase requests before anything is stored
type Validator struct {
	validate   *validator.Validate
	maxNumbers int
}

// NewValidator creates a validator that reports fields by their JSON names
func NewValidator(maxNumbers int) *Validator {
	if maxNumbers <= 0 {
		maxNumbers = DefaultMaxNumbers
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	return &Validator{validate: v, maxNumbers: maxNumbers}
}

// ValidateBuyer checks the required buyer fields and the email format
func (v *Validator) ValidateBuyer(buyer entity.Buyer) error {
	err := v.validate.Struct(buyer)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return errs.NewValidationError(errs.ErrInvalidBuyer, "buyer."+fe.Field(), describeTag(fe))
	}
	return fmt.Errorf("%w: %v", errs.ErrInvalidBuyer, err)
}

// ValidateRequest checks everything that does not need the raffle or the payment registry
func (v *Validator) ValidateRequest(req usecase.PurchaseRequest) error {
	if req.RaffleID == 0 {
		return errs.NewValidationError(errs.ErrInvalidRequest, "raffleId", "is required")
	}
	if err := allocation.ValidateNumbers(req.Numbers); err != nil {
		return err
	}
	if len(req.Numbers) > v.maxNumbers {
		return errs.NewValidationError(errs.ErrInvalidRequest, "numbers", fmt.Sprintf("must not exceed %d", v.maxNumbers))
	}
	if err := v.ValidateBuyer(req.Buyer); err != nil {
		return err
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return errs.NewValidationError(errs.ErrUnknownPaymentMethod, "paymentMethod", "is required")
	}
	if req.TransactionID != "" {
		if !transactionIDPattern.MatchString(req.TransactionID) || entity.IsCancellationTransactionID(req.TransactionID) {
			return errs.NewValidationError(errs.ErrInvalidTransactionID, "transactionId", "is malformed")
		}
	}
	return nil
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "failed " + fe.Tag()
	}
}
