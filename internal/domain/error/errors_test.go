package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrUserNotFound.Error() != "user not found" {
		t.Errorf("ErrUserNotFound has unexpected message: %s", ErrUserNotFound.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"NonPositiveAmount", ErrNonPositiveAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"InvalidTransactionType", ErrInvalidTransactionType, 4006},
		{"InvalidTimestamp", ErrInvalidTimestamp, 4007},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"OrderingViolation", NewOrderingViolationError(1, 9, 10), 4090},
		{"DuplicateTimestamp", NewDuplicateTimestampError(10, 1), 4091},
		{"Persistence", ErrPersistence, 5001},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestOrderingViolationError(t *testing.T) {
	err := NewOrderingViolationError(7, 9, 10)

	expected := "timestamp 9 must be greater than the latest timestamp 10 in the system"
	if err.Error() != expected {
		t.Errorf("OrderingViolationError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrOrderingViolation) {
		t.Error("errors.Is(err, ErrOrderingViolation) should be true")
	}
	if !IsConflictError(err) {
		t.Error("ordering violation should be a conflict error")
	}

	var ove *OrderingViolationError
	if !errors.As(err, &ove) {
		t.Fatal("errors.As should extract OrderingViolationError")
	}
	fields := ove.LogFields()
	if fields["latest"] != int64(10) || fields["attempted"] != int64(9) {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestDuplicateTimestampError(t *testing.T) {
	err := NewDuplicateTimestampError(42, 3)

	if err.Error() != "an event with timestamp 42 already exists" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !IsDuplicateTimestampError(err) {
		t.Error("IsDuplicateTimestampError should be true")
	}
	if IsOrderingViolationError(err) {
		t.Error("duplicate timestamp must not be reported as ordering violation")
	}
}

func TestIngestionError(t *testing.T) {
	base := NewDuplicateTimestampError(5, 1)
	err := NewIngestionError(1, "deposit", "10.00", 5, "appending", base)

	expected := "ingestion failed at appending for user 1 (deposit 10.00 at 5): an event with timestamp 5 already exists"
	if err.Error() != expected {
		t.Errorf("IngestionError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrDuplicateTimestamp) {
		t.Error("IngestionError should unwrap to ErrDuplicateTimestamp")
	}

	var ie *IngestionError
	if !errors.As(err, &ie) {
		t.Fatal("errors.As should extract IngestionError")
	}
	if ie.LogFields()["error_code"] != CodeDuplicateTimestamp {
		t.Errorf("unexpected error code in log fields: %v", ie.LogFields()["error_code"])
	}
}

func TestErrorClasses(t *testing.T) {
	if !IsInputError(NewValidationError("amount", ErrNonPositiveAmount)) {
		t.Error("validation error should be an input error")
	}
	if IsInputError(ErrPersistence) {
		t.Error("persistence failure must not be an input error")
	}
	if !IsPersistenceError(fmt.Errorf("%w: connection reset", ErrDatabaseConnection)) {
		t.Error("database connection error should be a persistence error")
	}
	if !IsUserNotFoundError(fmt.Errorf("lookup: %w", ErrUserNotFound)) {
		t.Error("wrapped user not found should be detected")
	}
}
