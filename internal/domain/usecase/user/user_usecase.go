package user

import (
	"context"

	errs "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/usecase"
)

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// UserExists checks if a user with the given ID exists
func (u *UserUseCase) UserExists(ctx context.Context, userID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	_, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetUser returns the public fields of a user
func (u *UserUseCase) GetUser(ctx context.Context, userID uint64) (*usecase.UserResponse, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
