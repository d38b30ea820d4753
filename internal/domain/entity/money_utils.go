package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxDigits is the total number of significant digits a stored amount may carry
const MaxDigits = 10

var maxAmount = decimal.New(1, MaxDigits-MaxDecimalPlaces)

// ParseAmount parses a decimal string with at most two fractional digits.
// Sign is not checked here; positivity belongs to the event invariants.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}

	if value.Exponent() < -MaxDecimalPlaces {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	if value.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, fmt.Errorf("%w: maximum %d digits allowed", errs.ErrInvalidAmount, MaxDigits)
	}

	return value, nil
}

// ValidatePositiveAmount parses the amount and rejects zero and negative values
func ValidatePositiveAmount(amount string) (decimal.Decimal, error) {
	value, err := ParseAmount(amount)
	if err != nil {
		return decimal.Zero, err
	}
	if !value.IsPositive() {
		return decimal.Zero, errs.ErrNonPositiveAmount
	}
	return value, nil
}

// AmountToCents converts an amount with at most two decimal places to integer cents
func AmountToCents(amount decimal.Decimal) int64 {
	return amount.Shift(MaxDecimalPlaces).IntPart()
}

// CentsToAmount converts integer cents back to a decimal amount
func CentsToAmount(cents int64) decimal.Decimal {
	return decimal.New(cents, -MaxDecimalPlaces)
}

// FormatAmount renders an amount with exactly 2 decimal places, e.g. "42.00"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}
