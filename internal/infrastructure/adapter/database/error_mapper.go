package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/repository"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeUser represents the user entity
	EntityTypeUser EntityType = "user"
	// EntityTypeEvent represents the ledger event entity
	EntityTypeEvent EntityType = "event"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error raised while touching entityType to a domain error.
// Unique conflicts and lost serialization conflicts on events are reported as
// duplicate timestamps; both are resolved by retrying with a new timestamp.
func (m *ErrorMapper) MapError(err error, entityType EntityType, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) && entityType == EntityTypeUser {
		return errs.ErrUserNotFound
	}

	switch m.classifier.Classify(err) {
	case repository.DuplicateKeyError, repository.SerializationError:
		if entityType == EntityTypeUser {
			return errs.ErrDuplicateUser
		}
		return fmt.Errorf("%w: %s: %s", errs.ErrDuplicateTimestamp, operation, err.Error())
	case repository.TransientError, repository.ConnectionError:
		return fmt.Errorf("%w: %s: %s", errs.ErrDatabaseConnection, operation, err.Error())
	}

	return fmt.Errorf("%w: %s: %s", errs.ErrPersistence, operation, err.Error())
}
