package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mcore "github.com/amirhossein-jamali/alert-processor/mocks/port/core"
)

func TestPoolSnapshotSaturated(t *testing.T) {
	tests := []struct {
		name     string
		snap     PoolSnapshot
		expected bool
	}{
		{name: "Idle pool", snap: PoolSnapshot{InUse: 0, MaxOpen: 25}},
		{name: "At threshold", snap: PoolSnapshot{InUse: 20, MaxOpen: 25}},
		{name: "Above threshold", snap: PoolSnapshot{InUse: 21, MaxOpen: 25}, expected: true},
		{name: "Single connection pool", snap: PoolSnapshot{InUse: 1, MaxOpen: 1}},
		{name: "Unlimited pool", snap: PoolSnapshot{InUse: 40, MaxOpen: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.snap.Saturated())
		})
	}
}

func TestPoolMonitorSample(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := mcore.NewMockTimeProvider(t)
	clock.On("Now").Return(now)
	log := mcore.NewMockLogger(t)

	stats := sql.DBStats{MaxOpenConnections: 10, OpenConnections: 10, InUse: 9, Idle: 1, WaitCount: 4, WaitDuration: time.Second}
	log.On("Warn", "Database connection pool saturated", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["in_use"] == 9 && fields["max_open"] == 10
	})).Once()

	m := NewPoolMonitor(func() sql.DBStats { return stats }, clock, log)
	assert.Equal(t, PoolSnapshot{}, m.Last())

	snap := m.Sample()
	assert.Equal(t, 9, snap.InUse)
	assert.Equal(t, int64(4), snap.WaitCount)
	assert.Equal(t, now, snap.SampledAt)
	assert.Equal(t, snap, m.Last())

	stats.InUse = 2
	assert.False(t, m.Sample().Saturated())
}

func TestPoolMonitorStopTwice(t *testing.T) {
	clock := mcore.NewMockTimeProvider(t)
	clock.On("Now").Return(time.Unix(0, 0)).Maybe()

	m := NewPoolMonitor(func() sql.DBStats { return sql.DBStats{MaxOpenConnections: 1} }, clock, mcore.NewMockLogger(t))
	m.Start(time.Hour)
	m.Stop()
	assert.NotPanics(t, m.Stop)
}
