package user

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
)

// DefaultUser is a user provisioned at startup
type DefaultUser struct {
	Name  string
	Email string
}

// DefaultUsers are seeded in this order, so on an empty database they get IDs 1 to 4
var DefaultUsers = []DefaultUser{
	{Name: "John Doe", Email: "john@example.com"},
	{Name: "Jane Smith", Email: "jane@example.com"},
	{Name: "Bob Johnson", Email: "bob@example.com"},
	{Name: "Alice Brown", Email: "alice@example.com"},
}

// CreateUser creates a new user with the given name and email
func (u *UserUseCase) CreateUser(ctx context.Context, name, email string) (*entity.User, error) {
	user, err := entity.NewUser(name, email, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	return user, nil
}

// CreateDefaultUsers creates any default user whose email is not taken yet
func (u *UserUseCase) CreateDefaultUsers(ctx context.Context) error {
	for _, du := range DefaultUsers {
		_, err := u.userRepo.GetByEmail(ctx, du.Email)
		if err == nil {
			continue
		}
		if !errs.IsUserNotFoundError(err) {
			return fmt.Errorf("failed to look up default user %s: %w", du.Email, err)
		}

		if _, err := u.CreateUser(ctx, du.Name, du.Email); err != nil && err != errs.ErrDuplicateUser {
			return fmt.Errorf("failed to create default user %s: %w", du.Email, err)
		}
	}

	return nil
}
