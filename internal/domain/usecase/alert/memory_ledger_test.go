package alert

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
)

// memoryLedger is an in-memory LedgerReader with the same bounds and ordering
// as the storage-backed ledger
type memoryLedger struct {
	events []*entity.Event
}

func (m *memoryLedger) add(userID uint64, txType entity.TransactionType, amount string, ts int64) *entity.Event {
	e := &entity.Event{
		ID:              uint64(len(m.events) + 1),
		UserID:          userID,
		TransactionType: txType,
		Amount:          decimal.RequireFromString(amount),
		Timestamp:       ts,
	}
	m.events = append(m.events, e)
	return e
}

func (m *memoryLedger) deposit(userID uint64, amount string, ts int64) Input {
	e := m.add(userID, entity.TypeDeposit, amount, ts)
	return Input{UserID: userID, TransactionType: e.TransactionType, Amount: e.Amount, Timestamp: ts}
}

func (m *memoryLedger) withdraw(userID uint64, amount string, ts int64) Input {
	e := m.add(userID, entity.TypeWithdraw, amount, ts)
	return Input{UserID: userID, TransactionType: e.TransactionType, Amount: e.Amount, Timestamp: ts}
}

func (m *memoryLedger) newestFirst(keep func(*entity.Event) bool) []*entity.Event {
	var out []*entity.Event
	for _, e := range m.events {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out
}

func (m *memoryLedger) LatestTimestamp(_ context.Context) (int64, bool, error) {
	if len(m.events) == 0 {
		return 0, false, nil
	}
	latest := m.events[0].Timestamp
	for _, e := range m.events[1:] {
		if e.Timestamp > latest {
			latest = e.Timestamp
		}
	}
	return latest, true, nil
}

func (m *memoryLedger) HasTimestamp(_ context.Context, timestamp int64) (bool, error) {
	for _, e := range m.events {
		if e.Timestamp == timestamp {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryLedger) RecentForUser(_ context.Context, userID uint64, maxTimestamp int64, limit int) ([]*entity.Event, error) {
	out := m.newestFirst(func(e *entity.Event) bool {
		return e.UserID == userID && e.Timestamp <= maxTimestamp
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryLedger) DepositsForUser(_ context.Context, userID uint64, maxTimestamp int64) ([]*entity.Event, error) {
	return m.newestFirst(func(e *entity.Event) bool {
		return e.UserID == userID && e.IsDeposit() && e.Timestamp <= maxTimestamp
	}), nil
}

func (m *memoryLedger) DepositsInWindow(_ context.Context, userID uint64, from, to int64) ([]*entity.Event, error) {
	return m.newestFirst(func(e *entity.Event) bool {
		return e.UserID == userID && e.IsDeposit() && e.Timestamp >= from && e.Timestamp <= to
	}), nil
}
