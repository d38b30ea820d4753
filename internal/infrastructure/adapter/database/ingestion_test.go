package database

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/usecase/event"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/logger"
)

type ingestionFixture struct {
	db      *TestDBManager
	service *event.Service
	john    uint64
	jane    uint64
}

func newIngestionFixture(t *testing.T) *ingestionFixture {
	t.Helper()

	log := logger.NewNoopLogger()
	tdb := NewTestDBManager(t, log)
	return &ingestionFixture{
		db:      tdb,
		service: event.NewEventService(tdb.Manager.CreateUnitOfWork(), tdb.TimeProvider, log, 0),
		john:    tdb.CreateTestUser(t, "John Doe", "john@example.com"),
		jane:    tdb.CreateTestUser(t, "Jane Smith", "jane@example.com"),
	}
}

func (f *ingestionFixture) ingest(t *testing.T, kind string, amount string, userID uint64, ts int64) (*entity.AlertResponse, error) {
	t.Helper()
	return f.service.IngestEvent(context.Background(), usecase.EventRequest{
		Type:      kind,
		Amount:    amount,
		UserID:    userID,
		Timestamp: ts,
	})
}

func (f *ingestionFixture) mustIngest(t *testing.T, kind string, amount string, userID uint64, ts int64) *entity.AlertResponse {
	t.Helper()
	resp, err := f.ingest(t, kind, amount, userID, ts)
	require.NoError(t, err)
	return resp
}

func TestIngestion_EndToEnd(t *testing.T) {
	t.Run("Small deposit on an empty ledger raises no alert", func(t *testing.T) {
		f := newIngestionFixture(t)

		resp := f.mustIngest(t, "deposit", "42.00", f.john, 10)

		assert.Equal(t, &entity.AlertResponse{Alert: false, AlertCodes: []int{}, UserID: f.john}, resp)
		assert.Equal(t, int64(1), f.db.CountEvents(t))
	})

	t.Run("Large withdraw on an empty ledger raises 1100", func(t *testing.T) {
		f := newIngestionFixture(t)

		resp := f.mustIngest(t, "withdraw", "150.00", f.john, 10)

		assert.True(t, resp.Alert)
		assert.Equal(t, []int{1100}, resp.AlertCodes)
	})

	t.Run("Three withdrawals raise 30 on the third", func(t *testing.T) {
		f := newIngestionFixture(t)

		f.mustIngest(t, "withdraw", "10.00", f.john, 1)
		f.mustIngest(t, "withdraw", "10.00", f.john, 2)
		resp := f.mustIngest(t, "withdraw", "10.00", f.john, 3)

		assert.Equal(t, []int{30}, resp.AlertCodes)
	})

	t.Run("Increasing deposits raise 300 across an interleaved withdraw", func(t *testing.T) {
		f := newIngestionFixture(t)

		f.mustIngest(t, "deposit", "10.00", f.john, 1)
		f.mustIngest(t, "withdraw", "5.00", f.john, 2)
		f.mustIngest(t, "deposit", "20.00", f.john, 3)
		resp := f.mustIngest(t, "deposit", "30.00", f.john, 4)

		assert.Equal(t, []int{300}, resp.AlertCodes)
	})

	t.Run("Deposits over 200 within 30 seconds raise 123", func(t *testing.T) {
		f := newIngestionFixture(t)

		f.mustIngest(t, "deposit", "100.00", f.john, 50)
		resp := f.mustIngest(t, "deposit", "150.00", f.john, 60)

		assert.Equal(t, []int{123}, resp.AlertCodes)
	})

	t.Run("Deposit outside the window does not count", func(t *testing.T) {
		f := newIngestionFixture(t)

		f.mustIngest(t, "deposit", "100.00", f.john, 10)
		resp := f.mustIngest(t, "deposit", "150.00", f.john, 60)

		assert.Empty(t, resp.AlertCodes)
		assert.False(t, resp.Alert)
	})

	t.Run("Other users' events do not feed the rules", func(t *testing.T) {
		f := newIngestionFixture(t)

		f.mustIngest(t, "withdraw", "1.00", f.jane, 1)
		f.mustIngest(t, "withdraw", "1.00", f.jane, 2)
		resp := f.mustIngest(t, "withdraw", "1.00", f.john, 3)

		assert.Empty(t, resp.AlertCodes)
	})
}

func TestIngestion_Rejections(t *testing.T) {
	t.Run("Earlier timestamp for another user is an ordering violation", func(t *testing.T) {
		f := newIngestionFixture(t)
		f.mustIngest(t, "deposit", "1.00", f.john, 10)

		_, err := f.ingest(t, "deposit", "1.00", f.jane, 9)

		var ove *errs.OrderingViolationError
		require.True(t, errors.As(err, &ove))
		assert.Equal(t, int64(9), ove.Attempted)
		assert.Equal(t, int64(10), ove.Latest)
		assert.Equal(t, int64(1), f.db.CountEvents(t))
	})

	t.Run("Same timestamp twice stores one event", func(t *testing.T) {
		f := newIngestionFixture(t)
		f.mustIngest(t, "deposit", "1.00", f.john, 10)

		_, err := f.ingest(t, "withdraw", "1.00", f.jane, 10)

		assert.ErrorIs(t, err, errs.ErrDuplicateTimestamp)
		assert.Equal(t, int64(1), f.db.CountEvents(t))
	})

	t.Run("Unknown user leaves the ledger unchanged", func(t *testing.T) {
		f := newIngestionFixture(t)

		_, err := f.ingest(t, "deposit", "1.00", 4242, 1)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Equal(t, int64(0), f.db.CountEvents(t))
	})

	t.Run("Invalid input leaves the ledger unchanged", func(t *testing.T) {
		f := newIngestionFixture(t)

		_, err := f.ingest(t, "deposit", "0", f.john, 1)
		assert.True(t, errs.IsInputError(err))

		_, err = f.ingest(t, "transfer", "1.00", f.john, 1)
		assert.True(t, errs.IsInputError(err))

		_, err = f.ingest(t, "deposit", "1.00", f.john, -1)
		assert.True(t, errs.IsInputError(err))

		assert.Equal(t, int64(0), f.db.CountEvents(t))
	})
}

// sqlite runs on a single connection, so these workers are serialized and every
// loser is stopped by the ordering guard before it reaches the unique index.
// TestIngestion_UniqueIndexSettlesSameTimestamp covers the index itself.
func TestIngestion_ConcurrentSameTimestamp(t *testing.T) {
	f := newIngestionFixture(t)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		accepted  int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := f.john
			if i%2 == 1 {
				userID = f.jane
			}
			_, err := f.ingest(t, "deposit", "5.00", userID, 100)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case errs.IsConflictError(err):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Equal(t, workers-1, conflicts)
	assert.Equal(t, int64(1), f.db.CountEvents(t))
}

func TestIngestion_UniqueIndexSettlesSameTimestamp(t *testing.T) {
	f := newIngestionFixture(t)
	uow := f.db.Manager.CreateUnitOfWork()
	ctx := context.Background()

	// appends without the ordering guard, as a race loser that read before the winner committed would
	appendAt := func(userID uint64, ts int64) error {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)

		ev, err := entity.NewEvent(userID, "deposit", "5.00", ts, f.db.TimeProvider)
		require.NoError(t, err)

		if _, err := uow.GetEventLedger(txCtx).Append(txCtx, ev); err != nil {
			_ = uow.Rollback(txCtx)
			return err
		}
		return uow.Commit(txCtx)
	}

	require.NoError(t, appendAt(f.john, 100))

	err := appendAt(f.jane, 100)

	var dte *errs.DuplicateTimestampError
	require.True(t, errors.As(err, &dte), "got %v", err)
	assert.Equal(t, int64(100), dte.Timestamp)
	assert.Equal(t, f.jane, dte.UserID)
	assert.False(t, errs.IsPersistenceError(err))
	assert.Equal(t, int64(1), f.db.CountEvents(t))
}

func TestRecentEvents(t *testing.T) {
	f := newIngestionFixture(t)
	f.mustIngest(t, "deposit", "1.00", f.john, 1)
	f.mustIngest(t, "withdraw", "2.00", f.jane, 2)
	f.mustIngest(t, "deposit", "3.00", f.john, 3)

	events, err := f.service.RecentEvents(context.Background(), f.john, 0)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(3), events[0].Timestamp)
	assert.Equal(t, "3.00", events[0].FormattedAmount())
}
