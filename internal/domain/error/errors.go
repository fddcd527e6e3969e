package error

import (
	"errors"
	"fmt"
)

// Category groups errors by how a caller should react to them
type Category string

const (
	CategoryValidation   Category = "validation"
	CategoryConflict     Category = "conflict"
	CategoryNotFound     Category = "not_found"
	CategoryUnauthorized Category = "unauthorized"
	CategoryUnavailable  Category = "unavailable"
	CategoryInternal     Category = "internal"
)

// Error codes for standardized API responses
const (
	// 400x - Validation errors
	CodeInvalidRequest         = 4000
	CodeInvalidBuyer           = 4001
	CodeDuplicateNumbers       = 4002
	CodeNumberOutOfRange       = 4003
	CodeEmptyNumbers           = 4004
	CodeUnknownPaymentMethod   = 4005
	CodeProofRequired          = 4006
	CodeReferenceRequired      = 4007
	CodeInvalidRaffle          = 4008
	CodeInvalidPrize           = 4009
	CodeInvalidTransactionID   = 4010
	CodeInvalidPaymentMethod   = 4011
	CodeInvalidStateTransition = 4012

	// 401x - Authentication
	CodeUnauthorized = 4013

	// 404x - Not found
	CodeNotFound              = 4040
	CodeRaffleNotFound        = 4041
	CodeTicketNotFound        = 4042
	CodeTransactionNotFound   = 4043
	CodePrizeNotFound         = 4044
	CodeWinnerNotFound        = 4045
	CodePaymentMethodNotFound = 4046

	// 409x - Conflicts
	CodeNumberUnavailable            = 4090
	CodeRaffleNotActive              = 4091
	CodeInsufficientTicketsAvailable = 4092
	CodeWinnersAlreadyExist          = 4093
	CodeDuplicateTransaction         = 4094
	CodeNoEligibleTickets            = 4095
	CodeInsufficientTickets          = 4096
	CodePrizeAlreadyAssigned         = 4097
	CodeDuplicatePrizePosition       = 4098
	CodeDrawInProgress               = 4099
	CodeTicketCodeCollision          = 4100
	CodeDuplicatePaymentMethod       = 4101
	CodeConcurrentUpdate             = 4102
	CodeTicketAlreadyWon             = 4103

	// 5xxx - Server errors
	CodeInternalServer            = 5000
	CodeDatabaseConnection        = 5001
	CodePaymentMethodsUnavailable = 5030
	CodeCancellationIncomplete    = 5002
	CodeStorage                   = 5003
)

// Validation errors
var (
	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidBuyer is returned when required buyer fields are missing or malformed
	ErrInvalidBuyer = errors.New("invalid buyer information")

	// ErrDuplicateNumbersInRequest is returned when a purchase asks for the same number twice
	ErrDuplicateNumbersInRequest = errors.New("duplicate numbers in request")

	// ErrNumberOutOfRange is returned when a number falls outside 1..total
	ErrNumberOutOfRange = errors.New("ticket number out of range")

	// ErrEmptyNumbers is returned when a purchase carries no numbers
	ErrEmptyNumbers = errors.New("at least one ticket number is required")

	// ErrUnknownPaymentMethod is returned when the payment method is not in the active registry
	ErrUnknownPaymentMethod = errors.New("unknown payment method")

	ErrProofRequired            = errors.New("payment method requires a proof of payment")
	ErrPaymentReferenceRequired = errors.New("payment method requires a payment reference")

	// ErrInvalidRaffle is returned when raffle attributes are invalid
	ErrInvalidRaffle = errors.New("invalid raffle")

	// ErrInvalidPrize is returned when prize attributes are invalid
	ErrInvalidPrize = errors.New("invalid prize")

	// ErrInvalidTransactionID is returned when the transaction ID is empty or malformed
	ErrInvalidTransactionID = errors.New("invalid transaction ID")

	// ErrInvalidPaymentMethod is returned when payment method attributes are invalid
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidStateTransition is returned when an entity cannot move to the requested state
	ErrInvalidStateTransition = errors.New("invalid state transition")
)

// Authentication errors
var (
	ErrUnauthorized = errors.New("unauthorized")
)

// Not found errors
var (
	ErrNotFound              = errors.New("resource not found")
	ErrRaffleNotFound        = errors.New("raffle not found")
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrPrizeNotFound         = errors.New("prize not found")
	ErrWinnerNotFound        = errors.New("winner not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
)

// Conflict errors
var (
	// ErrNumberUnavailable is returned when a requested number is already sold or reserved
	ErrNumberUnavailable = errors.New("ticket number is not available")

	// ErrRaffleNotActive is returned when tickets are requested for a raffle that is not selling
	ErrRaffleNotActive = errors.New("raffle is not active")

	// ErrInsufficientTicketsAvailable is returned when the request exceeds total - sold
	ErrInsufficientTicketsAvailable = errors.New("not enough tickets available")

	// ErrWinnersAlreadyExist is returned when a draw is attempted on a raffle that already has winners
	ErrWinnersAlreadyExist = errors.New("winners already exist for this raffle")

	// ErrDuplicateTransaction is returned when a client transaction ID is already in use
	ErrDuplicateTransaction = errors.New("transaction with this ID already exists")

	// ErrNoEligibleTickets is returned when a raffle has no sold and verified tickets
	ErrNoEligibleTickets = errors.New("no sold and verified tickets for this raffle")

	// ErrInsufficientTickets is returned when there are fewer eligible tickets than prizes
	ErrInsufficientTickets = errors.New("not enough eligible tickets for the number of prizes")

	ErrPrizeAlreadyAssigned   = errors.New("prize already has a winner assigned")
	ErrDuplicatePrizePosition = errors.New("a prize already exists at this position")
	ErrDrawInProgress         = errors.New("a draw is already running for this raffle")
	ErrTicketCodeCollision    = errors.New("ticket code collision")
	ErrDuplicatePaymentMethod = errors.New("payment method with this code already exists")
	ErrTicketAlreadyWon       = errors.New("ticket already holds a prize of this raffle")

	// ErrConcurrentUpdate is returned when the store aborts a write because of a competing one. Safe to retry.
	ErrConcurrentUpdate = errors.New("concurrent update, retry the request")
)

// Server side errors
var (
	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrPaymentMethodsUnavailable is returned when the registry cannot supply any active method
	ErrPaymentMethodsUnavailable = errors.New("payment methods unavailable")

	// ErrCancellationIncomplete is returned when some tickets of a transaction could not be cancelled
	ErrCancellationIncomplete = errors.New("cancellation could not update every ticket")

	// ErrStorage is returned when the proof storage fails
	ErrStorage = errors.New("proof storage error")
)

type classified struct {
	err      error
	code     int
	category Category
}

var registry = []classified{
	{ErrInvalidRequest, CodeInvalidRequest, CategoryValidation},
	{ErrInvalidBuyer, CodeInvalidBuyer, CategoryValidation},
	{ErrDuplicateNumbersInRequest, CodeDuplicateNumbers, CategoryValidation},
	{ErrNumberOutOfRange, CodeNumberOutOfRange, CategoryValidation},
	{ErrEmptyNumbers, CodeEmptyNumbers, CategoryValidation},
	{ErrUnknownPaymentMethod, CodeUnknownPaymentMethod, CategoryValidation},
	{ErrProofRequired, CodeProofRequired, CategoryValidation},
	{ErrPaymentReferenceRequired, CodeReferenceRequired, CategoryValidation},
	{ErrInvalidRaffle, CodeInvalidRaffle, CategoryValidation},
	{ErrInvalidPrize, CodeInvalidPrize, CategoryValidation},
	{ErrInvalidTransactionID, CodeInvalidTransactionID, CategoryValidation},
	{ErrInvalidPaymentMethod, CodeInvalidPaymentMethod, CategoryValidation},
	{ErrInvalidStateTransition, CodeInvalidStateTransition, CategoryConflict},

	{ErrUnauthorized, CodeUnauthorized, CategoryUnauthorized},

	{ErrRaffleNotFound, CodeRaffleNotFound, CategoryNotFound},
	{ErrTicketNotFound, CodeTicketNotFound, CategoryNotFound},
	{ErrTransactionNotFound, CodeTransactionNotFound, CategoryNotFound},
	{ErrPrizeNotFound, CodePrizeNotFound, CategoryNotFound},
	{ErrWinnerNotFound, CodeWinnerNotFound, CategoryNotFound},
	{ErrPaymentMethodNotFound, CodePaymentMethodNotFound, CategoryNotFound},
	{ErrNotFound, CodeNotFound, CategoryNotFound},

	{ErrNumberUnavailable, CodeNumberUnavailable, CategoryConflict},
	{ErrRaffleNotActive, CodeRaffleNotActive, CategoryConflict},
	{ErrInsufficientTicketsAvailable, CodeInsufficientTicketsAvailable, CategoryConflict},
	{ErrWinnersAlreadyExist, CodeWinnersAlreadyExist, CategoryConflict},
	{ErrDuplicateTransaction, CodeDuplicateTransaction, CategoryConflict},
	{ErrNoEligibleTickets, CodeNoEligibleTickets, CategoryConflict},
	{ErrInsufficientTickets, CodeInsufficientTickets, CategoryConflict},
	{ErrPrizeAlreadyAssigned, CodePrizeAlreadyAssigned, CategoryConflict},
	{ErrDuplicatePrizePosition, CodeDuplicatePrizePosition, CategoryConflict},
	{ErrDrawInProgress, CodeDrawInProgress, CategoryConflict},
	{ErrTicketCodeCollision, CodeTicketCodeCollision, CategoryConflict},
	{ErrDuplicatePaymentMethod, CodeDuplicatePaymentMethod, CategoryConflict},
	{ErrConcurrentUpdate, CodeConcurrentUpdate, CategoryConflict},
	{ErrTicketAlreadyWon, CodeTicketAlreadyWon, CategoryConflict},

	{ErrPaymentMethodsUnavailable, CodePaymentMethodsUnavailable, CategoryUnavailable},
	{ErrDatabaseConnection, CodeDatabaseConnection, CategoryInternal},
	{ErrCancellationIncomplete, CodeCancellationIncomplete, CategoryInternal},
	{ErrStorage, CodeStorage, CategoryInternal},
	{ErrConstraintViolation, CodeInternalServer, CategoryInternal},
}

func lookup(err error) (classified, bool) {
	for _, c := range registry {
		if errors.Is(err, c.err) {
			return c, true
		}
	}
	return classified{}, false
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	if c, ok := lookup(err); ok {
		return c.code
	}
	return CodeInternalServer
}

// CategoryOf returns the category of a known error, CategoryInternal otherwise
func CategoryOf(err error) Category {
	if c, ok := lookup(err); ok {
		return c.category
	}
	return CategoryInternal
}

// ValidationError reports the specific field that failed validation
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s %s", e.Err, e.Field, e.Reason)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": ErrorCode(e.Err),
	}
}

// NewValidationError creates a validation error for the given field
func NewValidationError(err error, field, reason string) error {
	return &ValidationError{Field: field, Reason: reason, Err: err}
}

// NumberError ties a ticket number failure to its raffle
type NumberError struct {
	RaffleID uint64
	Number   int
	Err      error
}

// Error implements the error interface for NumberError
func (e *NumberError) Error() string {
	return fmt.Sprintf("number %d in raffle %d: %v", e.Number, e.RaffleID, e.Err)
}

// Unwrap returns the underlying error
func (e *NumberError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *NumberError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "number_error",
		"raffle_id":  e.RaffleID,
		"number":     e.Number,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewNumberError creates a number error wrapping err
func NewNumberError(raffleID uint64, number int, err error) error {
	return &NumberError{RaffleID: raffleID, Number: number, Err: err}
}

// InsufficientTicketsAvailableError provides detail on how many tickets could still be sold
type InsufficientTicketsAvailableError struct {
	RaffleID  uint64
	Requested int
	Available int
}

// Error implements the error interface
func (e *InsufficientTicketsAvailableError) Error() string {
	return fmt.Sprintf("raffle %d has only %d tickets available, %d requested",
		e.RaffleID, e.Available, e.Requested)
}

// Is checks if the target error is an ErrInsufficientTicketsAvailable
func (e *InsufficientTicketsAvailableError) Is(target error) bool {
	return target == ErrInsufficientTicketsAvailable
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientTicketsAvailableError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_tickets_available",
		"raffle_id":  e.RaffleID,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientTicketsAvailable,
	}
}

// NewInsufficientTicketsAvailableError creates a detailed insufficient tickets error
func NewInsufficientTicketsAvailableError(raffleID uint64, requested, available int) error {
	return &InsufficientTicketsAvailableError{
		RaffleID:  raffleID,
		Requested: requested,
		Available: available,
	}
}

// DuplicateTransactionError provides detailed information about a reused transaction ID
type DuplicateTransactionError struct {
	TransactionID string
}

// Error implements the error interface
func (e *DuplicateTransactionError) Error() string {
	return fmt.Sprintf("duplicate transaction detected: transactionID=%s", e.TransactionID)
}

// Is checks if the target error is an ErrDuplicateTransaction
func (e *DuplicateTransactionError) Is(target error) bool {
	return target == ErrDuplicateTransaction
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateTransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "duplicate_transaction",
		"transaction_id": e.TransactionID,
		"error_code":     CodeDuplicateTransaction,
	}
}

// NewDuplicateTransactionError creates a new detailed duplicate transaction error
func NewDuplicateTransactionError(transactionID string) error {
	return &DuplicateTransactionError{TransactionID: transactionID}
}

// CancellationError lists the tickets that could not be reset while cancelling a transaction
type CancellationError struct {
	TransactionID   string
	FailedTicketIDs []uint64
}

// Error implements the error interface
func (e *CancellationError) Error() string {
	return fmt.Sprintf("cancellation of transaction %s failed for tickets %v",
		e.TransactionID, e.FailedTicketIDs)
}

// Is checks if the target error is an ErrCancellationIncomplete
func (e *CancellationError) Is(target error) bool {
	return target == ErrCancellationIncomplete
}

// LogFields returns a map of fields for structured logging
func (e *CancellationError) LogFields() map[string]any {
	return map[string]any{
		"error_type":        "cancellation_incomplete",
		"transaction_id":    e.TransactionID,
		"failed_ticket_ids": e.FailedTicketIDs,
		"error_code":        CodeCancellationIncomplete,
	}
}

// CompensationError records a failed cleanup of a stored proof file.
// It is logged next to the error that triggered the cleanup and never replaces it.
type CompensationError struct {
	StorageID string
	Err       error
}

// Error implements the error interface
func (e *CompensationError) Error() string {
	return fmt.Sprintf("failed to delete stored proof %s: %v", e.StorageID, e.Err)
}

// Unwrap returns the underlying error
func (e *CompensationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *CompensationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "compensation_error",
		"storage_id": e.StorageID,
		"error":      e.Err.Error(),
	}
}

// NewCompensationError creates a compensation error
func NewCompensationError(storageID string, err error) error {
	return &CompensationError{StorageID: storageID, Err: err}
}

// PurchaseError represents a failed purchase for logging purposes
type PurchaseError struct {
	RaffleID      uint64
	TransactionID string
	Numbers       []int
	Reason        string
	Err           error
}

// Error implements the error interface for PurchaseError
func (e *PurchaseError) Error() string {
	return fmt.Sprintf("purchase %s on raffle %d failed: %s - %v",
		e.TransactionID, e.RaffleID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *PurchaseError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PurchaseError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "purchase_error",
		"raffle_id":      e.RaffleID,
		"transaction_id": e.TransactionID,
		"numbers":        e.Numbers,
		"reason":         e.Reason,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewPurchaseError creates a detailed purchase error
func NewPurchaseError(raffleID uint64, transactionID string, numbers []int, reason string, err error) error {
	return &PurchaseError{
		RaffleID:      raffleID,
		TransactionID: transactionID,
		Numbers:       numbers,
		Reason:        reason,
		Err:           err,
	}
}

// IsValidationError checks if the error belongs to the validation category
func IsValidationError(err error) bool {
	return CategoryOf(err) == CategoryValidation
}

// IsConflictError checks if the error belongs to the conflict category
func IsConflictError(err error) bool {
	return CategoryOf(err) == CategoryConflict
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return CategoryOf(err) == CategoryNotFound
}

// IsNumberUnavailableError checks if the error reports a taken number
func IsNumberUnavailableError(err error) bool {
	return errors.Is(err, ErrNumberUnavailable)
}

// IsDuplicateTransactionError checks if the error is a duplicate transaction error
func IsDuplicateTransactionError(err error) bool {
	return errors.Is(err, ErrDuplicateTransaction)
}
