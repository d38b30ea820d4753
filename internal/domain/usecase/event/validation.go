package event

import (
	"fmt"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/usecase"
)

// EventValidator checks the shape of an incoming event before any storage access
type EventValidator struct{}

// NewEventValidator creates a new EventValidator
func NewEventValidator() *EventValidator {
	return &EventValidator{}
}

// Validate checks every field and reports all failures at once.
// The returned error is a *errs.ValidationError wrapping the first failure.
func (v *EventValidator) Validate(req usecase.EventRequest) error {
	verr := &errs.ValidationError{Details: map[string]string{}}
	fail := func(field string, err error) {
		verr.Details[field] = err.Error()
		if verr.Err == nil {
			verr.Err = err
		}
	}

	if !entity.IsValidTransactionType(req.Type) {
		fail("type", fmt.Errorf("%w: %q is not one of deposit, withdraw", errs.ErrInvalidTransactionType, req.Type))
	}

	if _, err := entity.ValidatePositiveAmount(req.Amount); err != nil {
		fail("amount", err)
	}

	if req.UserID == 0 {
		fail("user_id", errs.ErrInvalidUserID)
	}

	if req.Timestamp < 0 {
		fail("t", errs.ErrInvalidTimestamp)
	}

	if len(verr.Details) > 0 {
		return verr
	}
	return nil
}
