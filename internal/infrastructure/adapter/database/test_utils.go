package database

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode"

	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/time"
)

var testDBCounter atomic.Int64

// TestDBManager provides utilities for testing against a private in-memory
// sqlite database with the full schema applied
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects and migrates a fresh database. It is closed
// when the test finishes.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, t.Name())
	config := DefaultConfig(DriverSQLite)
	config.Path = fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, testDBCounter.Add(1))
	config.LogLevel = "silent"
	config.RetryAttempts = 1

	timeProvider := timeprovider.NewRealTimeProvider()
	manager := NewManager(config, logger, timeProvider)

	ctx := context.Background()
	if _, err := manager.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// CreateTestUser stores a user and returns its ID
func (m *TestDBManager) CreateTestUser(t *testing.T, name, email string) uint64 {
	t.Helper()

	now := time.Now().UTC()
	user := model.User{
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.Manager.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user.ID
}

// CountEvents returns the number of rows in the ledger
func (m *TestDBManager) CountEvents(t *testing.T) int64 {
	t.Helper()

	var count int64
	if err := m.Manager.DB().Model(&model.Event{}).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count events: %v", err)
	}
	return count
}
