package persistence

import (
	"context"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
)

// UserRepository defines the user lookups the ingestion path needs, plus the
// creation used by provisioning
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has this email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create stores a new user and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If a user with the same email already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error
}
