package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/alert-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/database/migration"
)

const poolMonitorInterval = 30 * time.Second

// Manager manages database connections
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	migrationMgr *migration.MigrationManager
	poolMonitor  *PoolMonitor
	timeProvider coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// dialector returns the GORM dialector for the configured driver
func (m *Manager) dialector() (gorm.Dialector, error) {
	switch m.config.Driver {
	case DriverPostgres:
		return postgres.Open(m.config.DSN()), nil
	case DriverSQLite:
		return sqlite.Open(m.config.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}
}

// Connect opens the database, retrying while it is unreachable
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", m.config.Redacted())

	dialector, err := m.dialector()
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger:         NewDatabaseLogger(m.logger, m.config.LogLevel, m.config.QueryTimeout/2),
		NowFunc:        m.timeProvider.Now,
		TranslateError: true,
		PrepareStmt:    m.config.Driver == DriverPostgres,
	}

	retryCfg := DefaultRetryConfig()
	retryCfg.MaxRetries = m.config.RetryAttempts
	if m.config.RetryDelay > 0 {
		retryCfg.RetryInterval = m.config.RetryDelay
		retryCfg.MaxInterval = 8 * m.config.RetryDelay
	}

	var gormDB *gorm.DB
	err = RetryOnConnectionError(ctx, retryCfg, func(ctx context.Context) error {
		db, openErr := gorm.Open(dialector, gormConfig)
		if openErr != nil {
			return openErr
		}
		if pingErr := ping(ctx, db, m.config.QueryTimeout); pingErr != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
			return pingErr
		}
		gormDB = db
		return nil
	}, m.logger)
	if err != nil {
		m.logger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := m.configurePool(gormDB); err != nil {
		return nil, err
	}

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	m.poolMonitor = NewPoolMonitor(sqlDB.Stats, m.timeProvider, m.logger)
	m.poolMonitor.Start(poolMonitorInterval)

	fields := m.config.Redacted()
	fields["max_open_conns"] = m.config.MaxOpenConns
	m.logger.Info("Successfully connected to database", fields)

	return m.db, nil
}

func (m *Manager) configurePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	// sqlite serializes writers; one connection also keeps a shared
	// in-memory database alive
	if m.config.Driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
		return db.Exec("PRAGMA foreign_keys = ON").Error
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)
	return nil
}

func ping(ctx context.Context, db *gorm.DB, timeout time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return sqlDB.PingContext(pingCtx)
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database not connected")
	}
	return ping(ctx, m.db, m.config.QueryTimeout)
}

// Migrate brings the schema up to date
func (m *Manager) Migrate(ctx context.Context) error {
	if m.migrationMgr == nil {
		return fmt.Errorf("database not connected")
	}
	return m.migrationMgr.MigrateAll(ctx)
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// PoolSnapshot samples the connection pool now
func (m *Manager) PoolSnapshot() PoolSnapshot {
	if m.poolMonitor == nil {
		return PoolSnapshot{}
	}
	return m.poolMonitor.Sample()
}

// PoolUsage reports busy and allowed connections for health checks
func (m *Manager) PoolUsage() (inUse, maxOpen int, saturated bool) {
	snap := m.PoolSnapshot()
	return snap.InUse, snap.MaxOpen, snap.Saturated()
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}

	m.logger.Info("Closing database connection", nil)

	if m.poolMonitor != nil {
		m.poolMonitor.Stop()
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger)
}

// MigrationManager returns the migration manager
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return m.migrationMgr
}
