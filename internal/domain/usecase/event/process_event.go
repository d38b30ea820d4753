package event

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/usecase/alert"
)

// Stage names the step an ingestion was in when it stopped
type Stage string

const (
	StageValidating Stage = "validating"
	StageAppending  Stage = "appending"
	StageEvaluating Stage = "evaluating"
	StageCommitting Stage = "committing"
)

// EventProcessor runs one ingestion as a single unit of work:
// validate, append, evaluate, commit. Any failure rolls the unit back.
type EventProcessor struct {
	uow          persistence.UnitOfWork
	validator    *EventValidator
	guard        *OrderingGuard
	engine       *alert.Engine
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewEventProcessor creates a new EventProcessor
func NewEventProcessor(
	uow persistence.UnitOfWork,
	validator *EventValidator,
	guard *OrderingGuard,
	engine *alert.Engine,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *EventProcessor {
	return &EventProcessor{
		uow:          uow,
		validator:    validator,
		guard:        guard,
		engine:       engine,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Process ingests one event and returns the triggered alert codes
func (p *EventProcessor) Process(ctx context.Context, req usecase.EventRequest) (*entity.AlertResponse, error) {
	if err := p.validator.Validate(req); err != nil {
		return nil, p.reject(req, StageValidating, err)
	}

	event, err := entity.NewEvent(req.UserID, req.Type, req.Amount, req.Timestamp, p.timeProvider)
	if err != nil {
		return nil, p.reject(req, StageValidating, err)
	}

	txCtx, err := p.uow.Begin(ctx)
	if err != nil {
		return nil, p.reject(req, StageValidating, asPersistence(err))
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		if rbErr := p.uow.Rollback(txCtx); rbErr != nil {
			p.logger.Warn("Failed to roll back ingestion", map[string]any{
				"user_id":   req.UserID,
				"timestamp": req.Timestamp,
				"error":     rbErr.Error(),
			})
		}
	}()

	if _, err := p.uow.GetUserRepository(txCtx).GetByID(txCtx, event.UserID); err != nil {
		if !errs.IsUserNotFoundError(err) {
			err = asPersistence(err)
		}
		return nil, p.reject(req, StageValidating, err)
	}

	ledger := p.uow.GetEventLedger(txCtx)
	if err := p.guard.Check(txCtx, ledger, event); err != nil {
		return nil, p.reject(req, StageValidating, err)
	}

	id, err := ledger.Append(txCtx, event)
	if err != nil {
		return nil, p.reject(req, StageAppending, storageError(event, err))
	}
	event.ID = id

	codes, err := p.engine.Evaluate(txCtx, ledger, alert.Input{
		UserID:          event.UserID,
		TransactionType: event.TransactionType,
		Amount:          event.Amount,
		Timestamp:       event.Timestamp,
	})
	if err != nil {
		return nil, p.reject(req, StageEvaluating, storageError(event, err))
	}

	// a failed commit is already rolled back by the storage layer
	finished = true
	if err := p.uow.Commit(txCtx); err != nil {
		return nil, p.reject(req, StageCommitting, storageError(event, err))
	}

	resp := entity.NewAlertResponse(event.UserID, codes)
	p.logger.Info("event_ingested", map[string]any{
		"event_id":         event.ID,
		"user_id":          event.UserID,
		"transaction_type": string(event.TransactionType),
		"amount":           event.FormattedAmount(),
		"timestamp":        event.Timestamp,
		"alert":            resp.Alert,
		"alert_codes":      resp.AlertCodes,
	})

	return &resp, nil
}

// storageError maps a ledger or commit failure inside the unit of work to
// DuplicateTimestamp when it lost a timestamp conflict, else PersistenceFailure
func storageError(event *entity.Event, err error) error {
	if errs.IsDuplicateTimestampError(err) {
		return errs.NewDuplicateTimestampError(event.Timestamp, event.UserID)
	}
	return asPersistence(err)
}

// reject logs the decision and wraps err with the ingestion context
func (p *EventProcessor) reject(req usecase.EventRequest, stage Stage, err error) error {
	ierr := errs.NewIngestionError(req.UserID, req.Type, req.Amount, req.Timestamp, string(stage), err)

	fields := map[string]any{
		"reason":     reason(err),
		"stage":      string(stage),
		"user_id":    req.UserID,
		"timestamp":  req.Timestamp,
		"error":      err.Error(),
		"error_code": errs.ErrorCode(err),
	}
	if errs.IsPersistenceError(err) {
		p.logger.Error("event_rejected", fields)
	} else {
		p.logger.Info("event_rejected", fields)
	}

	return ierr
}

func reason(err error) string {
	switch {
	case errs.IsInputError(err):
		return "invalid_input"
	case errs.IsUserNotFoundError(err):
		return "user_not_found"
	case errs.IsOrderingViolationError(err):
		return "ordering_violation"
	case errs.IsDuplicateTimestampError(err):
		return "duplicate_timestamp"
	default:
		return "persistence_failure"
	}
}

// asPersistence classifies any unexpected storage fault as a persistence failure
func asPersistence(err error) error {
	if errs.IsPersistenceError(err) {
		return err
	}
	return fmt.Errorf("%w: %v", errs.ErrPersistence, err)
}
