// Package model holds the GORM table definitions.
package model

import "time"

// DropModel is the GORM-specific struct for the 'drops' table.
type DropModel struct {
	ID             string    `gorm:"type:varchar(64);primaryKey"`
	Lat            float64   `gorm:"not null"`
	Lng            float64   `gorm:"not null"`
	ContentType    string    `gorm:"type:varchar(16);not null"`
	ContentRef     string    `gorm:"type:text;not null"`
	Teaser         string    `gorm:"type:varchar(280)"`
	RevealDistance float64   `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (DropModel) TableName() string {
	return "drops"
}

// CollectionModel is the GORM-specific struct for the 'drop_collections' table.
// One row per collect event; EventID makes redelivered events idempotent.
type CollectionModel struct {
	ID             string    `gorm:"type:varchar(64);primaryKey"`
	EventID        string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	DropID         string    `gorm:"type:varchar(64);not null;index"`
	SessionID      string    `gorm:"type:varchar(64)"`
	DistanceMeters float64   `gorm:"not null"`
	CollectedAt    time.Time `gorm:"not null"`
	RecordedAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CollectionModel) TableName() string {
	return "drop_collections"
}

// All lists every model for auto migration.
func All() []any {
	return []any{&DropModel{}, &CollectionModel{}}
}
