package alert

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/persistence"
)

// Rule thresholds
var (
	withdrawAmountLimit  = decimal.NewFromInt(100)
	depositWindowLimit   = decimal.NewFromInt(200)
	depositWindowSeconds = int64(30)
	consecutiveWithdraws = 3
	increasingDepositRun = 3
)

// Input is the already appended event the rules are evaluated for
type Input struct {
	UserID          uint64
	TransactionType entity.TransactionType
	Amount          decimal.Decimal
	Timestamp       int64
}

// RuleFunc reports whether a rule triggers for the input
type RuleFunc func(ctx context.Context, reader persistence.LedgerReader, in Input) (bool, error)

// Rule binds an alert code to its condition
type Rule struct {
	Code  entity.AlertCode
	Check RuleFunc
}

// Rules per transaction type, in the order their codes are reported
var (
	WithdrawRules = []Rule{
		{Code: entity.AlertWithdrawOver100, Check: WithdrawOverLimit},
		{Code: entity.AlertConsecutiveWithdraws, Check: ThreeConsecutiveWithdraws},
	}
	DepositRules = []Rule{
		{Code: entity.AlertIncreasingDeposits, Check: ThreeIncreasingDeposits},
		{Code: entity.AlertAccumulatedDepositsOver, Check: DepositWindowOverLimit},
	}
)

// WithdrawOverLimit triggers when the withdrawn amount is strictly over 100.00
func WithdrawOverLimit(_ context.Context, _ persistence.LedgerReader, in Input) (bool, error) {
	return in.Amount.GreaterThan(withdrawAmountLimit), nil
}

// ThreeConsecutiveWithdraws triggers when the user's last 3 events of any type
// up to the current timestamp are all withdrawals
func ThreeConsecutiveWithdraws(ctx context.Context, reader persistence.LedgerReader, in Input) (bool, error) {
	events, err := reader.RecentForUser(ctx, in.UserID, in.Timestamp, consecutiveWithdraws)
	if err != nil {
		return false, err
	}
	if len(events) < consecutiveWithdraws {
		return false, nil
	}
	for _, e := range events[:consecutiveWithdraws] {
		if !e.IsWithdraw() {
			return false, nil
		}
	}
	return true, nil
}

// ThreeIncreasingDeposits triggers when the user's last 3 deposits up to the
// current timestamp have strictly increasing amounts going forward in time.
// Withdrawals between them are ignored.
func ThreeIncreasingDeposits(ctx context.Context, reader persistence.LedgerReader, in Input) (bool, error) {
	deposits, err := reader.DepositsForUser(ctx, in.UserID, in.Timestamp)
	if err != nil {
		return false, err
	}
	if len(deposits) < increasingDepositRun {
		return false, nil
	}
	// newest first
	newest, mid, oldest := deposits[0], deposits[1], deposits[2]
	return newest.Amount.GreaterThan(mid.Amount) && mid.Amount.GreaterThan(oldest.Amount), nil
}

// DepositWindowOverLimit triggers when the user's deposits within the 30 seconds
// ending at the current timestamp, both ends inclusive, sum to more than 200.00
func DepositWindowOverLimit(ctx context.Context, reader persistence.LedgerReader, in Input) (bool, error) {
	deposits, err := reader.DepositsInWindow(ctx, in.UserID, in.Timestamp-depositWindowSeconds, in.Timestamp)
	if err != nil {
		return false, err
	}
	total := decimal.Zero
	for _, d := range deposits {
		total = total.Add(d.Amount)
	}
	return total.GreaterThan(depositWindowLimit), nil
}
