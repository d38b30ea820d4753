package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
	tport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
)

// TransactionType represents the kind of money movement an event records
type TransactionType string

// Transaction types
const (
	TypeDeposit  TransactionType = "deposit"
	TypeWithdraw TransactionType = "withdraw"
)

// Event is a single deposit or withdrawal appended to the ledger.
// Events are immutable once appended and ordered only by Timestamp.
type Event struct {
	ID              uint64          // Ledger-assigned identifier
	UserID          uint64          // Owning user
	TransactionType TransactionType // deposit or withdraw
	Amount          decimal.Decimal // Strictly positive, at most 2 decimal places
	Timestamp       int64           // Client supplied, unique across the whole ledger
	CreatedAt       time.Time       // Server assigned, informational only
}

// NewEvent creates a new event after validating its fields
func NewEvent(
	userID uint64,
	transactionType string,
	amount string,
	timestamp int64,
	timeProvider tport.TimeProvider,
) (*Event, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	if !IsValidTransactionType(transactionType) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, transactionType)
	}

	value, err := ValidatePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	if timestamp < 0 {
		return nil, errs.ErrInvalidTimestamp
	}

	return &Event{
		UserID:          userID,
		TransactionType: TransactionType(transactionType),
		Amount:          value,
		Timestamp:       timestamp,
		CreatedAt:       timeProvider.Now(),
	}, nil
}

// IsDeposit returns true for deposit events
func (e *Event) IsDeposit() bool {
	return e.TransactionType == TypeDeposit
}

// IsWithdraw returns true for withdraw events
func (e *Event) IsWithdraw() bool {
	return e.TransactionType == TypeWithdraw
}

// AmountInCents returns the amount converted to cents for storage
func (e *Event) AmountInCents() int64 {
	return AmountToCents(e.Amount)
}

// FormattedAmount returns the amount with exactly 2 decimal places
func (e *Event) FormattedAmount() string {
	return FormatAmount(e.Amount)
}

// String renders the event as "User <id> - <type> <amount> at <timestamp>"
func (e *Event) String() string {
	return fmt.Sprintf("User %d - %s %s at %d", e.UserID, e.TransactionType, e.FormattedAmount(), e.Timestamp)
}

// IsValidTransactionType validates if the transaction type is allowed
func IsValidTransactionType(transactionType string) bool {
	return transactionType == string(TypeDeposit) || transactionType == string(TypeWithdraw)
}
