package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating operations across
// repositories inside one storage transaction
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetEventLedger returns an event ledger bound to the current transaction
	GetEventLedger(ctx context.Context) EventLedger
}
