package entity

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
)

// MaxNameLength is the longest display name a user may carry
const MaxNameLength = 100

// User represents an account holder whose events are monitored
type User struct {
	ID        uint64    // Unique identifier for the user
	Name      string    // Display name
	Email     string    // Unique email address
	CreatedAt time.Time // When the user was created
	UpdatedAt time.Time // When the display fields were last updated
}

// NewUser creates a new user with the given display fields.
// The ID is assigned by the storage layer on creation.
func NewUser(name, email string, timeProvider coreport.TimeProvider) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return nil, fmt.Errorf("%w: name must be between 1 and %d characters", errs.ErrInvalidRequest, MaxNameLength)
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email %q", errs.ErrInvalidRequest, email)
	}

	now := timeProvider.Now()
	return &User{
		Name:      name,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// String renders the user as "Name (email)"
func (u *User) String() string {
	return fmt.Sprintf("%s (%s)", u.Name, u.Email)
}
