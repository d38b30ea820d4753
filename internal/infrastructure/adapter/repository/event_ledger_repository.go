package repository

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/model"
)

// EventLedgerRepository implements the EventLedger interface using GORM.
// All reads use inclusive timestamp bounds and return newest first.
type EventLedgerRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewEventLedgerRepository creates a new EventLedgerRepository instance
func NewEventLedgerRepository(db *gorm.DB, logger coreport.Logger) *EventLedgerRepository {
	return &EventLedgerRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func eventEntityToModel(event *entity.Event) model.Event {
	return model.Event{
		UserID:          event.UserID,
		TransactionType: string(event.TransactionType),
		Amount:          event.FormattedAmount(),
		AmountInCents:   event.AmountInCents(),
		Timestamp:       event.Timestamp,
		CreatedAt:       event.CreatedAt,
	}
}

func eventModelToEntity(m *model.Event) *entity.Event {
	return &entity.Event{
		ID:              m.ID,
		UserID:          m.UserID,
		TransactionType: entity.TransactionType(m.TransactionType),
		Amount:          entity.CentsToAmount(m.AmountInCents),
		Timestamp:       m.Timestamp,
		CreatedAt:       m.CreatedAt,
	}
}

func eventModelsToEntities(models []model.Event) []*entity.Event {
	events := make([]*entity.Event, 0, len(models))
	for i := range models {
		events = append(events, eventModelToEntity(&models[i]))
	}
	return events
}

// readError wraps a failed read as a persistence failure. Under SERIALIZABLE a
// read can also lose to a concurrent ingestion; that is reported as a timestamp conflict.
func (r *EventLedgerRepository) readError(operation string, err error, userID uint64) error {
	if r.errorClassifier.IsSerializationError(err) {
		r.logger.Warn("Ledger read lost a serialization conflict", map[string]any{
			"operation": operation,
			"user_id":   userID,
		})
		return fmt.Errorf("%w: %s: %s", errs.ErrDuplicateTimestamp, operation, err.Error())
	}

	r.logger.Error("Ledger read failed", map[string]any{
		"operation": operation,
		"user_id":   userID,
		"error":     err.Error(),
	})
	return fmt.Errorf("%w: %s: %s", errs.ErrPersistence, operation, err.Error())
}

// Append durably stores the event and sets its ID
func (r *EventLedgerRepository) Append(ctx context.Context, event *entity.Event) (uint64, error) {
	eventModel := eventEntityToModel(event)

	if err := r.db.WithContext(ctx).Create(&eventModel).Error; err != nil {
		// postgres reports a collision with a concurrent serializable insert as 40001, not 23505
		if r.errorClassifier.IsDuplicateKeyError(err) || r.errorClassifier.IsSerializationError(err) {
			r.logger.Warn("Duplicate event timestamp", map[string]any{
				"user_id":    event.UserID,
				"timestamp":  event.Timestamp,
				"error_type": string(r.errorClassifier.Classify(err)),
			})
			return 0, errs.NewDuplicateTimestampError(event.Timestamp, event.UserID)
		}

		r.logger.Error("Failed to append event", map[string]any{
			"user_id":    event.UserID,
			"timestamp":  event.Timestamp,
			"error":      err.Error(),
			"error_type": string(r.errorClassifier.Classify(err)),
		})
		return 0, fmt.Errorf("%w: append: %s", errs.ErrPersistence, err.Error())
	}

	event.ID = eventModel.ID
	r.logger.Debug("Event appended", map[string]any{
		"event_id":  event.ID,
		"user_id":   event.UserID,
		"timestamp": event.Timestamp,
	})
	return event.ID, nil
}

// LatestTimestamp returns the maximum timestamp across all users
func (r *EventLedgerRepository) LatestTimestamp(ctx context.Context) (int64, bool, error) {
	var latest sql.NullInt64
	err := r.db.WithContext(ctx).Model(&model.Event{}).
		Select("MAX(timestamp)").
		Scan(&latest).Error
	if err != nil {
		return 0, false, r.readError("latest timestamp", err, 0)
	}
	if !latest.Valid {
		return 0, false, nil
	}
	return latest.Int64, true, nil
}

// HasTimestamp reports whether any event carries exactly this timestamp
func (r *EventLedgerRepository) HasTimestamp(ctx context.Context, timestamp int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("timestamp = ?", timestamp).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, r.readError("timestamp lookup", err, 0)
	}
	return count > 0, nil
}

// RecentForUser returns at most limit events for the user with timestamp <= maxTimestamp
func (r *EventLedgerRepository) RecentForUser(ctx context.Context, userID uint64, maxTimestamp int64, limit int) ([]*entity.Event, error) {
	if limit <= 0 {
		return []*entity.Event{}, nil
	}

	var models []model.Event
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND timestamp <= ?", userID, maxTimestamp).
		Order("timestamp DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, r.readError("recent events", err, userID)
	}
	return eventModelsToEntities(models), nil
}

// DepositsForUser returns every deposit for the user with timestamp <= maxTimestamp
func (r *EventLedgerRepository) DepositsForUser(ctx context.Context, userID uint64, maxTimestamp int64) ([]*entity.Event, error) {
	var models []model.Event
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND transaction_type = ? AND timestamp <= ?", userID, string(entity.TypeDeposit), maxTimestamp).
		Order("timestamp DESC").
		Find(&models).Error
	if err != nil {
		return nil, r.readError("deposits", err, userID)
	}
	return eventModelsToEntities(models), nil
}

// DepositsInWindow returns the user's deposits with from <= timestamp <= to
func (r *EventLedgerRepository) DepositsInWindow(ctx context.Context, userID uint64, from, to int64) ([]*entity.Event, error) {
	var models []model.Event
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND transaction_type = ? AND timestamp BETWEEN ? AND ?", userID, string(entity.TypeDeposit), from, to).
		Order("timestamp DESC").
		Find(&models).Error
	if err != nil {
		return nil, r.readError("deposit window", err, userID)
	}
	return eventModelsToEntities(models), nil
}
