package alert

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/persistence"
)

// Engine evaluates the fixed rule set for one event. It holds no state
// between calls; everything it knows comes from the reader it is given.
type Engine struct {
	logger coreport.Logger
}

// NewEngine creates a new rule engine
func NewEngine(logger coreport.Logger) *Engine {
	return &Engine{logger: logger}
}

// RulesFor returns the rules that apply to a transaction type
func RulesFor(transactionType entity.TransactionType) []Rule {
	switch transactionType {
	case entity.TypeWithdraw:
		return WithdrawRules
	case entity.TypeDeposit:
		return DepositRules
	default:
		return nil
	}
}

// Evaluate runs the rules for the input's transaction type and returns the
// triggered codes in rule order. The result is never nil.
// An error is returned only when the ledger cannot be read.
func (e *Engine) Evaluate(ctx context.Context, reader persistence.LedgerReader, in Input) ([]entity.AlertCode, error) {
	codes := make([]entity.AlertCode, 0, 2)

	for _, rule := range RulesFor(in.TransactionType) {
		triggered, err := rule.Check(ctx, reader, in)
		if err != nil {
			return nil, fmt.Errorf("evaluating rule %d: %w", rule.Code, err)
		}
		if !triggered {
			continue
		}

		codes = append(codes, rule.Code)
		e.logger.Info("alert_triggered", map[string]any{
			"code":             int(rule.Code),
			"user_id":          in.UserID,
			"transaction_type": string(in.TransactionType),
			"amount":           entity.FormatAmount(in.Amount),
			"timestamp":        in.Timestamp,
		})
	}

	return codes, nil
}
