package alert

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
	coremocks "github.com/amirhossein-jamali/alert-processor/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/alert-processor/mocks/port/persistence"
)

func TestEngineEvaluate(t *testing.T) {
	ctx := context.Background()

	t.Run("Small deposit raises nothing", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		engine := NewEngine(logger)
		ledger := &memoryLedger{}
		in := ledger.deposit(1, "42.00", 10)

		codes, err := engine.Evaluate(ctx, ledger, in)

		require.NoError(t, err)
		assert.NotNil(t, codes)
		assert.Empty(t, codes)
	})

	t.Run("Large withdraw raises 1100", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Info("alert_triggered", mock.Anything).Return().Once()
		engine := NewEngine(logger)
		ledger := &memoryLedger{}
		in := ledger.withdraw(1, "150.00", 11)

		codes, err := engine.Evaluate(ctx, ledger, in)

		require.NoError(t, err)
		assert.Equal(t, []entity.AlertCode{entity.AlertWithdrawOver100}, codes)
	})

	t.Run("Withdraw codes keep rule order", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Info("alert_triggered", mock.Anything).Return().Times(2)
		engine := NewEngine(logger)
		ledger := &memoryLedger{}
		ledger.withdraw(1, "10.00", 1)
		ledger.withdraw(1, "10.00", 2)
		in := ledger.withdraw(1, "150.00", 3)

		codes, err := engine.Evaluate(ctx, ledger, in)

		require.NoError(t, err)
		assert.Equal(t, []entity.AlertCode{entity.AlertWithdrawOver100, entity.AlertConsecutiveWithdraws}, codes)
	})

	t.Run("Deposit codes keep rule order", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Info("alert_triggered", mock.Anything).Return().Times(2)
		engine := NewEngine(logger)
		ledger := &memoryLedger{}
		ledger.deposit(1, "50.00", 1)
		ledger.deposit(1, "60.00", 2)
		in := ledger.deposit(1, "100.00", 3)

		codes, err := engine.Evaluate(ctx, ledger, in)

		require.NoError(t, err)
		assert.Equal(t, []entity.AlertCode{entity.AlertIncreasingDeposits, entity.AlertAccumulatedDepositsOver}, codes)
	})

	t.Run("Ledger read failure is returned", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		engine := NewEngine(logger)
		reader := persistencemocks.NewMockEventLedger(t)
		readErr := errors.New("connection reset")
		reader.EXPECT().RecentForUser(mock.Anything, uint64(1), int64(5), 3).Return(nil, readErr).Once()

		codes, err := engine.Evaluate(ctx, reader, Input{
			UserID:          1,
			TransactionType: entity.TypeWithdraw,
			Amount:          entity.CentsToAmount(1000),
			Timestamp:       5,
		})

		assert.ErrorIs(t, err, readErr)
		assert.Nil(t, codes)
	})
}

func TestRulesFor(t *testing.T) {
	assert.Len(t, RulesFor(entity.TypeWithdraw), 2)
	assert.Len(t, RulesFor(entity.TypeDeposit), 2)
	assert.Empty(t, RulesFor(entity.TransactionType("transfer")))
}
