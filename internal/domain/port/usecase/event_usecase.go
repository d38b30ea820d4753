package usecase

import (
	"context"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
)

// EventRequest represents one incoming deposit or withdrawal
type EventRequest struct {
	Type      string `json:"type"`
	Amount    string `json:"amount"`
	UserID    uint64 `json:"user_id"`
	Timestamp int64  `json:"t"`
}

// EventUseCase defines the ingestion operations
type EventUseCase interface {
	// IngestEvent validates, appends and evaluates one event atomically.
	// Returns the alert outcome for the event's user.
	IngestEvent(ctx context.Context, req EventRequest) (*entity.AlertResponse, error)

	// RecentEvents returns up to limit of the user's newest events
	RecentEvents(ctx context.Context, userID uint64, limit int) ([]*entity.Event, error)
}
