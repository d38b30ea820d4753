package model

import (
	"time"
)

// Event represents the database model for ledger events.
// Timestamp is unique across the whole table; the composite indexes serve
// the per-user range reads of the alert rules.
type Event struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	UserID          uint64    `gorm:"not null;index:idx_events_user_timestamp,priority:1;index:idx_events_user_type_timestamp,priority:1"`
	TransactionType string    `gorm:"not null;size:10;index:idx_events_user_type_timestamp,priority:2"`
	Amount          string    `gorm:"not null;size:50"`
	AmountInCents   int64     `gorm:"column:amount_cents;not null"`
	Timestamp       int64     `gorm:"not null;uniqueIndex:idx_events_timestamp;index:idx_events_user_timestamp,priority:2;index:idx_events_user_type_timestamp,priority:3"`
	CreatedAt       time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}
