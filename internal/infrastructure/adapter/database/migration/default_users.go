package migration

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/usecase"
)

// SeedDefaultUsers creates the built-in users that are missing
func SeedDefaultUsers(ctx context.Context, users usecase.UserUseCase) error {
	if err := users.CreateDefaultUsers(ctx); err != nil {
		return fmt.Errorf("failed to seed default users: %w", err)
	}
	return nil
}
