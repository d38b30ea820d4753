package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and table settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

var advancedIndexes = []indexStatement{
	{
		// deposit-only reads of rules 300 and 123
		name: "idx_events_deposits",
		sql: `CREATE INDEX IF NOT EXISTS idx_events_deposits
			ON events (user_id, timestamp DESC)
			WHERE transaction_type = 'deposit'`,
	},
	{
		name: "idx_events_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_events_created_at_brin
			ON events USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
}

// CreateAdvancedIndexes creates PostgreSQL-only indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL table settings. Failures are
// logged and otherwise ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// events is append-only, pages can be packed full
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE events SET (fillfactor = 100)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for events table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE events ALTER COLUMN user_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_id", map[string]any{
			"error": err.Error(),
		})
	}
}
