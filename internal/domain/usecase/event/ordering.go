package event

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/persistence"
)

// OrderingGuard rejects events whose timestamp is not after the latest
// accepted timestamp across all users. The check reads without locking;
// concurrent races are settled by the ledger's unique timestamp index.
type OrderingGuard struct{}

// NewOrderingGuard creates a new OrderingGuard
func NewOrderingGuard() *OrderingGuard {
	return &OrderingGuard{}
}

// Check returns a DuplicateTimestampError when the ledger already holds
// event.Timestamp, and an OrderingViolationError for any other timestamp <= latest
func (g *OrderingGuard) Check(ctx context.Context, reader persistence.LedgerReader, event *entity.Event) error {
	latest, found, err := reader.LatestTimestamp(ctx)
	if err != nil {
		return fmt.Errorf("failed to read latest timestamp: %w", storageError(event, err))
	}

	if !found || event.Timestamp > latest {
		return nil
	}

	taken, err := reader.HasTimestamp(ctx, event.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to look up timestamp: %w", storageError(event, err))
	}
	if taken {
		return errs.NewDuplicateTimestampError(event.Timestamp, event.UserID)
	}
	return errs.NewOrderingViolationError(event.UserID, event.Timestamp, latest)
}
