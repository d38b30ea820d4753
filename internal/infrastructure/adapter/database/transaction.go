package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions.
// One ingestion runs in one transaction; on PostgreSQL it is SERIALIZABLE.
type UnitOfWork struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) persistence.UnitOfWork {
	return &UnitOfWork{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.errorMapper.MapError(tx.Error, EntityTypeEvent, "begin")
	}

	if u.db.Dialector.Name() == DriverPostgres {
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
			tx.Rollback()
			u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
			return ctx, u.errorMapper.MapError(err, EntityTypeEvent, "set isolation level")
		}
	}

	return context.WithValue(ctx, txKey, tx), nil
}

func txFromContext(ctx context.Context) (*gorm.DB, error) {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return nil, fmt.Errorf("no transaction found in context")
	}
	return tx, nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, err := txFromContext(ctx)
	if err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return u.errorMapper.MapError(err, EntityTypeEvent, "commit")
	}
	return nil
}

// Rollback rolls back the current transaction. Rolling back a finished
// transaction is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, err := txFromContext(ctx)
	if err != nil {
		return err
	}

	err = tx.Rollback().Error
	if errors.Is(err, sql.ErrTxDone) {
		u.logger.Debug("Transaction has already been committed or rolled back", nil)
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// GetUserRepository returns a user repository in the current transaction
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.logger)
}

// GetEventLedger returns an event ledger in the current transaction
func (u *UnitOfWork) GetEventLedger(ctx context.Context) persistence.EventLedger {
	return repository.NewEventLedgerRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the transaction from context, or the base
// handle when there is none
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	if tx, err := txFromContext(ctx); err == nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
