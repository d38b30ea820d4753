package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount          = 4002
	CodeInvalidUserID          = 4003
	CodeInvalidTransactionType = 4006
	CodeInvalidTimestamp       = 4007
	CodeInvalidRequest         = 4000
	CodeUserNotFound           = 4040
	CodeOrderingViolation      = 4090
	CodeDuplicateTimestamp     = 4091

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodePersistence    = 5001
)

// Base error types
var (
	// ErrInvalidAmount is returned when the event amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNonPositiveAmount is returned when the event amount is zero or negative
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidTransactionType is returned when the event type is neither deposit nor withdraw
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTimestamp is returned when the client timestamp is negative
	ErrInvalidTimestamp = errors.New("timestamp must be non-negative")

	// ErrOrderingViolation is returned when a timestamp is not after the latest accepted one
	ErrOrderingViolation = errors.New("timestamp is not greater than the latest accepted timestamp")

	// ErrDuplicateTimestamp is returned when the ledger already holds an event with the timestamp
	ErrDuplicateTimestamp = errors.New("an event with this timestamp already exists")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrPersistence is returned for unexpected storage faults
	ErrPersistence = errors.New("persistence failure")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNonPositiveAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidTransactionType):
		return CodeInvalidTransactionType
	case errors.Is(err, ErrInvalidTimestamp):
		return CodeInvalidTimestamp
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrOrderingViolation):
		return CodeOrderingViolation
	case errors.Is(err, ErrDuplicateTimestamp):
		return CodeDuplicateTimestamp
	case errors.Is(err, ErrPersistence), errors.Is(err, ErrDatabaseConnection):
		return CodePersistence
	default:
		return CodeInternalServer
	}
}

// IsInputError reports whether err belongs to the input validation class.
// These are rejected before any durable effect.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNonPositiveAmount) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidTransactionType) ||
		errors.Is(err, ErrInvalidTimestamp) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsConflictError reports whether err is an ordering or duplicate timestamp conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrOrderingViolation) || errors.Is(err, ErrDuplicateTimestamp)
}

// OrderingViolationError provides details about a rejected out-of-order timestamp
type OrderingViolationError struct {
	UserID    uint64
	Attempted int64
	Latest    int64
}

// Error implements the error interface
func (e *OrderingViolationError) Error() string {
	return fmt.Sprintf("timestamp %d must be greater than the latest timestamp %d in the system",
		e.Attempted, e.Latest)
}

// Is checks if the target error is an ErrOrderingViolation
func (e *OrderingViolationError) Is(target error) bool {
	return target == ErrOrderingViolation
}

// LogFields returns a map of fields for structured logging
func (e *OrderingViolationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ordering_violation",
		"user_id":    e.UserID,
		"attempted":  e.Attempted,
		"latest":     e.Latest,
		"error_code": CodeOrderingViolation,
	}
}

// NewOrderingViolationError creates a new detailed ordering violation error
func NewOrderingViolationError(userID uint64, attempted, latest int64) error {
	return &OrderingViolationError{
		UserID:    userID,
		Attempted: attempted,
		Latest:    latest,
	}
}

// DuplicateTimestampError provides detailed information about a duplicate timestamp
type DuplicateTimestampError struct {
	Timestamp int64
	UserID    uint64
}

// Error implements the error interface
func (e *DuplicateTimestampError) Error() string {
	return fmt.Sprintf("an event with timestamp %d already exists", e.Timestamp)
}

// Is checks if the target error is an ErrDuplicateTimestamp
func (e *DuplicateTimestampError) Is(target error) bool {
	return target == ErrDuplicateTimestamp
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateTimestampError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "duplicate_timestamp",
		"timestamp":  e.Timestamp,
		"user_id":    e.UserID,
		"error_code": CodeDuplicateTimestamp,
	}
}

// NewDuplicateTimestampError creates a new detailed duplicate timestamp error
func NewDuplicateTimestampError(timestamp int64, userID uint64) error {
	return &DuplicateTimestampError{
		Timestamp: timestamp,
		UserID:    userID,
	}
}

// ValidationError carries per-field details for a rejected payload
type ValidationError struct {
	Details map[string]string
	Err     error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid payload: %v", e.Details)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field string, err error) error {
	return &ValidationError{
		Details: map[string]string{field: err.Error()},
		Err:     err,
	}
}

// IngestionError represents an error raised while ingesting an event
type IngestionError struct {
	UserID          uint64
	TransactionType string
	Amount          string
	Timestamp       int64
	Stage           string
	Err             error
}

// Error implements the error interface for IngestionError
func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingestion failed at %s for user %d (%s %s at %d): %v",
		e.Stage, e.UserID, e.TransactionType, e.Amount, e.Timestamp, e.Err)
}

// Unwrap returns the underlying error
func (e *IngestionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *IngestionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":       "ingestion_error",
		"user_id":          e.UserID,
		"transaction_type": e.TransactionType,
		"amount":           e.Amount,
		"timestamp":        e.Timestamp,
		"stage":            e.Stage,
		"error":            e.Err.Error(),
		"error_code":       ErrorCode(e.Err),
	}
}

// NewIngestionError creates a detailed ingestion error
func NewIngestionError(userID uint64, transactionType, amount string, timestamp int64, stage string, err error) error {
	return &IngestionError{
		UserID:          userID,
		TransactionType: transactionType,
		Amount:          amount,
		Timestamp:       timestamp,
		Stage:           stage,
		Err:             err,
	}
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsDuplicateTimestampError checks if the error is a duplicate timestamp error
func IsDuplicateTimestampError(err error) bool {
	return errors.Is(err, ErrDuplicateTimestamp)
}

// IsOrderingViolationError checks if the error is an ordering violation
func IsOrderingViolationError(err error) bool {
	return errors.Is(err, ErrOrderingViolation)
}

// IsPersistenceError checks if the error is a storage fault
func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrPersistence) || errors.Is(err, ErrDatabaseConnection)
}
