// Package activity provides append and read operations for the activity log.
package activity

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ventastarango2700-netizen/unofitmx/internal/db/models"
)

const (
	// RecentLimit is the fixed number of entries returned by Recent.
	RecentLimit = 20
)

// Action tags recorded in the activity log. Every mutating success and most
// permission denials append exactly one entry with one of these tags.
const (
	ActionStatusChanged           = "status_changed"
	ActionStatusChangeDenied      = "status_change_denied"
	ActionControlActivated        = "control_activated"
	ActionControlActivationDenied = "control_activation_denied"
	ActionMessageSent             = "message_sent"
	ActionUsersReviewed           = "users_reviewed"
	ActionSystemReset             = "system_reset"
)

// SystemRole is recorded as the acting role for entries the system itself writes.
const SystemRole = "SYSTEM"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Append adds one entry to the activity log.
func Append(db *gorm.DB, action, role, details string) error {
	if db == nil {
		return ErrDBNil
	}

	entry := &models.ActivityLog{
		Action:   action,
		UserRole: role,
		Details:  details,
	}

	result := db.Create(entry)

	return result.Error
}

// Recent retrieves the most recent log entries, newest first.
func Recent(db *gorm.DB) ([]models.ActivityLog, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	entries := make([]models.ActivityLog, 0)
	result := db.Order("created_at DESC").Limit(RecentLimit).Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

// Count returns the number of log entries.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.ActivityLog{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// Clear deletes all log entries. Used by the system reset only.
func Clear(db *gorm.DB) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("1 = 1").Delete(&models.ActivityLog{})

	return result.Error
}
