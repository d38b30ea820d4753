package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/model"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("User not found", fields)
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate user", fields)
		return errs.ErrDuplicateUser
	}

	logFields := map[string]any{"error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, map[string]any{"user_id": id})
	}
	return userModelToEntity(&userModel), nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var userModel model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting user by email", err, map[string]any{"email": email})
	}
	return userModelToEntity(&userModel), nil
}

// Create stores a new user and sets its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("creating user", err, map[string]any{"email": user.Email})
	}

	user.ID = userModel.ID
	r.logger.Debug("User stored", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}
