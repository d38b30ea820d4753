package event

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/alert-processor/internal/domain/error"
	persistencemocks "github.com/amirhossein-jamali/alert-processor/mocks/port/persistence"
)

func TestOrderingGuard(t *testing.T) {
	ctx := context.Background()
	guard := NewOrderingGuard()

	t.Run("Empty ledger accepts any timestamp", func(t *testing.T) {
		ledger := persistencemocks.NewMockEventLedger(t)
		ledger.EXPECT().LatestTimestamp(mock.Anything).Return(int64(0), false, nil).Once()

		assert.NoError(t, guard.Check(ctx, ledger, &entity.Event{UserID: 1, Timestamp: 0}))
	})

	t.Run("Later timestamp accepted", func(t *testing.T) {
		ledger := persistencemocks.NewMockEventLedger(t)
		ledger.EXPECT().LatestTimestamp(mock.Anything).Return(int64(10), true, nil).Once()

		assert.NoError(t, guard.Check(ctx, ledger, &entity.Event{UserID: 1, Timestamp: 11}))
	})

	t.Run("Resubmitted timestamp is a duplicate", func(t *testing.T) {
		ledger := persistencemocks.NewMockEventLedger(t)
		ledger.EXPECT().LatestTimestamp(mock.Anything).Return(int64(10), true, nil).Once()
		ledger.EXPECT().HasTimestamp(mock.Anything, int64(10)).Return(true, nil).Once()

		err := guard.Check(ctx, ledger, &entity.Event{UserID: 2, Timestamp: 10})

		var dte *errs.DuplicateTimestampError
		assert.True(t, errors.As(err, &dte))
		assert.Equal(t, int64(10), dte.Timestamp)
		assert.False(t, errs.IsOrderingViolationError(err))
	})

	t.Run("Earlier unused timestamp is an ordering violation", func(t *testing.T) {
		ledger := persistencemocks.NewMockEventLedger(t)
		ledger.EXPECT().LatestTimestamp(mock.Anything).Return(int64(10), true, nil).Once()
		ledger.EXPECT().HasTimestamp(mock.Anything, int64(9)).Return(false, nil).Once()

		err := guard.Check(ctx, ledger, &entity.Event{UserID: 1, Timestamp: 9})

		var ove *errs.OrderingViolationError
		assert.True(t, errors.As(err, &ove))
		assert.Equal(t, int64(9), ove.Attempted)
		assert.Equal(t, int64(10), ove.Latest)
	})

	t.Run("Earlier used timestamp is a duplicate", func(t *testing.T) {
		ledger := persistencemocks.NewMockEventLedger(t)
		ledger.EXPECT().LatestTimestamp(mock.Anything).Return(int64(10), true, nil).Once()
		ledger.EXPECT().HasTimestamp(mock.Anything, int64(3)).Return(true, nil).Once()

		err := guard.Check(ctx, ledger, &entity.Event{UserID: 1, Timestamp: 3})
		assert.ErrorIs(t, err, errs.ErrDuplicateTimestamp)
	})

	t.Run("Timestamp lookup failure is a persistence failure", func(t *testing.T) {
		ledger := persistencemocks.NewMockEventLedger(t)
		ledger.EXPECT().LatestTimestamp(mock.Anything).Return(int64(10), true, nil).Once()
		ledger.EXPECT().HasTimestamp(mock.Anything, int64(3)).Return(false, errors.New("timeout")).Once()

		err := guard.Check(ctx, ledger, &entity.Event{UserID: 1, Timestamp: 3})
		assert.ErrorIs(t, err, errs.ErrPersistence)
	})

	t.Run("Read failure is a persistence failure", func(t *testing.T) {
		ledger := persistencemocks.NewMockEventLedger(t)
		ledger.EXPECT().LatestTimestamp(mock.Anything).Return(int64(0), false, errors.New("timeout")).Once()

		err := guard.Check(ctx, ledger, &entity.Event{UserID: 1, Timestamp: 9})
		assert.ErrorIs(t, err, errs.ErrPersistence)
	})

	t.Run("Serialization conflict on read is a duplicate", func(t *testing.T) {
		ledger := persistencemocks.NewMockEventLedger(t)
		ledger.EXPECT().LatestTimestamp(mock.Anything).
			Return(int64(0), false, fmt.Errorf("%w: latest timestamp: SQLSTATE 40001", errs.ErrDuplicateTimestamp)).Once()

		err := guard.Check(ctx, ledger, &entity.Event{UserID: 3, Timestamp: 12})

		var dte *errs.DuplicateTimestampError
		assert.True(t, errors.As(err, &dte))
		assert.Equal(t, uint64(3), dte.UserID)
		assert.False(t, errs.IsPersistenceError(err))
	})
}
