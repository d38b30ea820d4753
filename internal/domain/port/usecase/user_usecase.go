package usecase

import (
	"context"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
)

// UserResponse represents the public view of a user
type UserResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// GetUser retrieves a user's public fields
	GetUser(ctx context.Context, userID uint64) (*UserResponse, error)

	// CreateUser creates a new user with the given name and email
	CreateUser(ctx context.Context, name, email string) (*entity.User, error)

	// CreateDefaultUsers creates the predefined users if they are missing
	CreateDefaultUsers(ctx context.Context) error

	// UserExists checks if a user exists with the given ID
	UserExists(ctx context.Context, userID uint64) (bool, error)
}
