package models

import "time"

// ActivityLog represents one entry of the audit trail.
// The log is append-only except for the bulk delete performed by a reset.
// Every mutating success and most permission denials append exactly one entry.
type ActivityLog struct {
	// ID is the unique identifier for the entry.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Action is the action tag, e.g. "status_changed" or "status_change_denied".
	Action string `gorm:"size:255;not null" json:"action"`
	// UserRole is the role that performed the action. Free text, may be empty.
	UserRole string `gorm:"size:10" json:"user_role"`
	// Details holds free-text details about the action.
	Details string `json:"details"`
	// CreatedAt is the timestamp when the entry was appended (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the database table name for the ActivityLog model.
// This overrides GORM's default pluralized table naming.
func (ActivityLog) TableName() string {
	return "activity_log"
}
