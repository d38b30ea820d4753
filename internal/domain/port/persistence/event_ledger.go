package persistence

import (
	"context"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
)

// LedgerReader is the read-only view of the event ledger handed to the rule engine.
// Every range query orders by timestamp only and treats bounds as inclusive.
type LedgerReader interface {
	// LatestTimestamp returns the maximum timestamp across all users.
	// The boolean is false when the ledger is empty.
	//
	// Possible errors:
	// - ErrPersistence: If the storage read fails
	LatestTimestamp(ctx context.Context) (int64, bool, error)

	// HasTimestamp reports whether any user's event carries exactly this timestamp
	//
	// Possible errors:
	// - ErrPersistence: If the storage read fails
	HasTimestamp(ctx context.Context, timestamp int64) (bool, error)

	// RecentForUser returns at most limit events of any type for the user with
	// timestamp <= maxTimestamp, newest first
	//
	// Possible errors:
	// - ErrPersistence: If the storage read fails
	RecentForUser(ctx context.Context, userID uint64, maxTimestamp int64, limit int) ([]*entity.Event, error)

	// DepositsForUser returns every deposit for the user with
	// timestamp <= maxTimestamp, newest first
	//
	// Possible errors:
	// - ErrPersistence: If the storage read fails
	DepositsForUser(ctx context.Context, userID uint64, maxTimestamp int64) ([]*entity.Event, error)

	// DepositsInWindow returns the user's deposits with from <= timestamp <= to
	//
	// Possible errors:
	// - ErrPersistence: If the storage read fails
	DepositsInWindow(ctx context.Context, userID uint64, from, to int64) ([]*entity.Event, error)
}

// EventLedger is the append-only store of events. There is no update or delete.
type EventLedger interface {
	LedgerReader

	// Append durably stores the event and sets its ID.
	//
	// Possible errors:
	// - ErrDuplicateTimestamp: If an event with the same timestamp already exists
	// - ErrPersistence: If the storage write fails
	Append(ctx context.Context, event *entity.Event) (uint64, error)
}
