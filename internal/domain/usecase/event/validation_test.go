package event

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/usecase"
)

func TestEventValidator(t *testing.T) {
	validator := NewEventValidator()

	t.Run("Valid request", func(t *testing.T) {
		err := validator.Validate(usecase.EventRequest{Type: "deposit", Amount: "42.00", UserID: 1, Timestamp: 0})
		assert.NoError(t, err)
	})

	testCases := []struct {
		name     string
		req      usecase.EventRequest
		field    string
		expected error
	}{
		{"Unknown type", usecase.EventRequest{Type: "refund", Amount: "1.00", UserID: 1, Timestamp: 1}, "type", errs.ErrInvalidTransactionType},
		{"Zero amount", usecase.EventRequest{Type: "deposit", Amount: "0", UserID: 1, Timestamp: 1}, "amount", errs.ErrNonPositiveAmount},
		{"Three decimals", usecase.EventRequest{Type: "deposit", Amount: "1.001", UserID: 1, Timestamp: 1}, "amount", errs.ErrInvalidAmount},
		{"Zero user", usecase.EventRequest{Type: "withdraw", Amount: "1.00", UserID: 0, Timestamp: 1}, "user_id", errs.ErrInvalidUserID},
		{"Negative timestamp", usecase.EventRequest{Type: "withdraw", Amount: "1.00", UserID: 1, Timestamp: -3}, "t", errs.ErrInvalidTimestamp},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.Validate(tc.req)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expected)
			assert.True(t, errs.IsInputError(err))

			var verr *errs.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Details, tc.field)
			assert.Len(t, verr.Details, 1)
		})
	}

	t.Run("All failures are reported", func(t *testing.T) {
		err := validator.Validate(usecase.EventRequest{Type: "", Amount: "", UserID: 0, Timestamp: -1})

		var verr *errs.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Details, 4)
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
	})
}
