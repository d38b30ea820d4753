package model

import "time"

// MigrationVersion is one row of the schema history. Rows are only ever
// appended; the newest row is the current schema version.
type MigrationVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"size:20;not null;index"`
	Dialect   string    `gorm:"size:20;not null"`
	Details   string    `gorm:"type:text"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for the migration version model
func (MigrationVersion) TableName() string {
	return "schema_versions"
}
