// Package models contains database model definitions.
package models

import "time"

// StatusKey is the key of the singleton system status row.
const StatusKey = "status"

// DefaultStatus is the status value installed on first start and after a reset.
const DefaultStatus = "Sistema estable"

// SystemState represents a keyed free-text state entry.
// The only key in use is StatusKey, holding the operational status string
// shown to every role on the dashboard.
type SystemState struct {
	// ID is the unique identifier for the state entry.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Key is the unique name of the state entry.
	Key string `gorm:"uniqueIndex;size:255;not null" json:"key"`
	// Value is the free-text value of the state entry.
	Value string `json:"value"`
	// UpdatedAt is the timestamp of the last change (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the SystemState model.
// This overrides GORM's default pluralized table naming.
func (SystemState) TableName() string {
	return "system_state"
}
