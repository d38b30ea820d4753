package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError  ErrorType = "duplicate_key"
	SerializationError ErrorType = "serialization"
	TransientError     ErrorType = "transient"
	LockError          ErrorType = "lock"
	ConnectionError    ErrorType = "connection"
	ConstraintError    ErrorType = "constraint"
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error, or "" when unknown
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsSerializationError(err):
		return SerializationError
	case c.IsLockError(err):
		return LockError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsConstraintError(err):
		return ConstraintError
	}
	return ""
}

func containsAny(err error, fragments ...string) bool {
	msg := err.Error()
	for _, f := range fragments {
		if strings.Contains(msg, f) {
			return true
		}
	}
	return false
}

// IsDuplicateKeyError checks if the error is a unique constraint violation.
// Dialects with TranslateError enabled surface gorm.ErrDuplicatedKey; the
// message fallback covers raw driver errors.
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return containsAny(err, "duplicate key", "UNIQUE constraint", "Duplicate entry", "SQLSTATE 23505")
}

// IsSerializationError checks if a SERIALIZABLE transaction lost a conflict
func (c *ErrorClassifier) IsSerializationError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(err, "could not serialize access", "serialization failure", "SQLSTATE 40001")
}

// IsTransientError checks if an error is transient
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(err, "connection reset", "connection refused", "timeout", "EOF", "server closed", "broken pipe", "database is locked")
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(err, "deadlock", "lock wait timeout", "database is locked") || c.IsSerializationError(err)
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(err, "connection", "dial", "network") || c.IsTransientError(err)
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	return containsAny(err, "constraint", "violates", "foreign key", "not null") || c.IsDuplicateKeyError(err)
}
