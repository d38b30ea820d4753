package repository

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/alert-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/model"
)

var dbSeq atomic.Int64

// openTestDB returns a migrated in-memory sqlite database private to the test
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Event{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) uint64 {
	t.Helper()

	now := time.Now().UTC()
	u := model.User{Name: "Test User", Email: email, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(&u).Error)
	return u.ID
}

func newEvent(userID uint64, kind entity.TransactionType, amount string, ts int64) *entity.Event {
	return &entity.Event{
		UserID:          userID,
		TransactionType: kind,
		Amount:          decimal.RequireFromString(amount),
		Timestamp:       ts,
		CreatedAt:       time.Now().UTC(),
	}
}

func timestamps(events []*entity.Event) []int64 {
	out := make([]int64, 0, len(events))
	for _, e := range events {
		out = append(out, e.Timestamp)
	}
	return out
}
