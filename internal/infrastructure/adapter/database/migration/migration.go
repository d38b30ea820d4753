package migration

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/model"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion. Running it again on
// an up-to-date database is a no-op.
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"dialect":        m.db.Dialector.Name(),
	})

	db := m.db.WithContext(ctx)

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		return m.fail("create migration version table", err)
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return m.fail("check current schema version", err)
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := db.AutoMigrate(&model.User{}, &model.Event{}); err != nil {
		return m.fail("auto-migrate models", err)
	}

	if err := m.createIndexes(ctx); err != nil {
		return m.fail("create indexes", err)
	}

	if m.db.Dialector.Name() == "postgres" {
		if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
			return m.fail("create advanced indexes", err)
		}
		m.advancedIndexMgr.CreatePerformanceTweaks(ctx)
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Event ledger schema"); err != nil {
		return m.fail("update schema version", err)
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"from":    currentVersion,
		"version": CurrentSchemaVersion,
	})
	return nil
}

func (m *MigrationManager) fail(step string, err error) error {
	m.logger.Error("Migration step failed", map[string]any{
		"step":  step,
		"error": err.Error(),
	})
	return fmt.Errorf("failed to %s: %w", step, err)
}

// GetCurrentVersion gets the current migration version, "" for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		Dialect:   m.db.Dialector.Name(),
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

// createIndexes creates the ledger indexes every dialect supports.
// AutoMigrate already declares them from the model tags; the explicit
// statements cover tables created before the tags existed.
func (m *MigrationManager) createIndexes(ctx context.Context) error {
	m.logger.Info("Creating database indexes", nil)

	statements := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_events_timestamp ON events (timestamp)",
		"CREATE INDEX IF NOT EXISTS idx_events_user_timestamp ON events (user_id, timestamp)",
		"CREATE INDEX IF NOT EXISTS idx_events_user_type_timestamp ON events (user_id, transaction_type, timestamp)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (email)",
	}
	for _, stmt := range statements {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
