package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{"12345678.99", 1234567899},
			{" 42.00 ", 4200},
			{"0", 0},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				amount, err := ParseAmount(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, AmountToCents(amount))
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			description string
		}{
			{"", "Empty string"},
			{"   ", "Whitespace only"},
			{"1.234", "Too many decimal places"},
			{"abc", "Non-numeric"},
			{"1,000.00", "Comma as thousands separator"},
			{"1.00.00", "Multiple decimal points"},
			{"$100", "Currency symbol"},
			{"100000000.00", "Too many digits"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}
	})
}

func TestValidatePositiveAmount(t *testing.T) {
	amount, err := ValidatePositiveAmount("0.01")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("0.01")))

	_, err = ValidatePositiveAmount("0.00")
	assert.ErrorIs(t, err, errs.ErrNonPositiveAmount)

	_, err = ValidatePositiveAmount("-42.00")
	assert.ErrorIs(t, err, errs.ErrNonPositiveAmount)

	_, err = ValidatePositiveAmount("4.567")
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestCentsRoundTrip(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{10000, "100.00"},
		{1, "0.01"},
		{10, "0.10"},
		{10001, "100.01"},
		{0, "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			amount := CentsToAmount(tc.cents)
			assert.Equal(t, tc.expected, FormatAmount(amount))
			assert.Equal(t, tc.cents, AmountToCents(amount))
		})
	}
}
