package event

import (
	"context"
	"fmt"
	"math"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/usecase/alert"
)

// History page bounds for RecentEvents
const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
)

// Service implements usecase.EventUseCase
type Service struct {
	processor    *EventProcessor
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	timeout      coreport.Duration
}

// NewEventService wires the ingestion pipeline. A timeout of zero leaves the
// caller's context untouched.
func NewEventService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	timeout coreport.Duration,
) *Service {
	processor := NewEventProcessor(
		uow,
		NewEventValidator(),
		NewOrderingGuard(),
		alert.NewEngine(logger),
		timeProvider,
		logger,
	)

	return &Service{
		processor:    processor,
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		timeout:      timeout,
	}
}

var _ usecase.EventUseCase = (*Service)(nil)

// IngestEvent processes one event under the configured deadline
func (s *Service) IngestEvent(ctx context.Context, req usecase.EventRequest) (*entity.AlertResponse, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = s.timeProvider.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return s.processor.Process(ctx, req)
}

// RecentEvents returns the user's newest events, newest first
func (s *Service) RecentEvents(ctx context.Context, userID uint64, limit int) ([]*entity.Event, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	if _, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID); err != nil {
		return nil, err
	}

	events, err := s.uow.GetEventLedger(ctx).RecentForUser(ctx, userID, math.MaxInt64, limit)
	if err != nil {
		s.logger.Error("Failed to read event history", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("failed to read event history: %w", asPersistence(err))
	}

	return events, nil
}
