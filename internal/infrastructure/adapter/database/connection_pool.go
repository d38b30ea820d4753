package database

import (
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
)

// saturationRatio is the in-use share of MaxOpenConns above which the pool is reported as saturated
const saturationRatio = 0.8

// PoolSnapshot is one sample of the connection pool
type PoolSnapshot struct {
	Open      int
	InUse     int
	Idle      int
	MaxOpen   int
	WaitCount int64
	WaitTime  time.Duration
	SampledAt time.Time
}

// Saturated reports whether almost every allowed connection is busy.
// A pool of a single connection (sqlite) is never considered saturated.
func (s PoolSnapshot) Saturated() bool {
	return s.MaxOpen > 1 && float64(s.InUse) > float64(s.MaxOpen)*saturationRatio
}

// PoolMonitor samples sql.DBStats on an interval. Ingestion holds one connection
// for the whole unit of work, so a saturated pool shows up as request latency first.
type PoolMonitor struct {
	stats  func() sql.DBStats
	clock  coreport.TimeProvider
	logger coreport.Logger

	mu   sync.RWMutex
	last PoolSnapshot

	stop     chan struct{}
	stopOnce sync.Once
}

// NewPoolMonitor creates a monitor over the given stats source
func NewPoolMonitor(stats func() sql.DBStats, clock coreport.TimeProvider, logger coreport.Logger) *PoolMonitor {
	return &PoolMonitor{
		stats:  stats,
		clock:  clock,
		logger: logger,
		stop:   make(chan struct{}),
	}
}

// Start takes a first sample, then one per interval until Stop
func (m *PoolMonitor) Start(interval time.Duration) {
	m.Sample()

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Sample()
			case <-m.stop:
				return
			}
		}
	}()
}

// Stop ends sampling. Safe to call more than once.
func (m *PoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// Sample reads the pool stats now and stores them as the latest snapshot
func (m *PoolMonitor) Sample() PoolSnapshot {
	st := m.stats()
	snap := PoolSnapshot{
		Open:      st.OpenConnections,
		InUse:     st.InUse,
		Idle:      st.Idle,
		MaxOpen:   st.MaxOpenConnections,
		WaitCount: st.WaitCount,
		WaitTime:  st.WaitDuration,
		SampledAt: m.clock.Now(),
	}

	m.mu.Lock()
	m.last = snap
	m.mu.Unlock()

	if snap.Saturated() {
		m.logger.Warn("Database connection pool saturated", map[string]any{
			"in_use":     snap.InUse,
			"max_open":   snap.MaxOpen,
			"idle":       snap.Idle,
			"wait_count": snap.WaitCount,
			"wait_time":  snap.WaitTime.String(),
		})
	}
	return snap
}

// Last returns the most recent snapshot, zero before the first sample
func (m *PoolMonitor) Last() PoolSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}
