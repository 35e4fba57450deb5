// Package systemstate provides operations on the singleton system status row.
package systemstate

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ventastarango2700-netizen/unofitmx/internal/db/models"
)

const (
	keyQueryPattern = "key = ?"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetStatus retrieves the current system status string.
// If the singleton row is missing the default status is returned; the row
// itself is created by the seeding routine, not here.
func GetStatus(db *gorm.DB) (string, error) {
	if db == nil {
		return "", ErrDBNil
	}

	var state models.SystemState
	result := db.Where(keyQueryPattern, models.StatusKey).First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.DefaultStatus, nil
		}
		return "", result.Error
	}

	return state.Value, nil
}

// SetStatus updates the system status singleton to the given value.
// Any string is accepted, including the empty string.
func SetStatus(db *gorm.DB, status string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.SystemState{}).
		Where(keyQueryPattern, models.StatusKey).
		Update("value", status)

	return result.Error
}

// ResetStatus restores the system status singleton to the default value.
// The row is updated in place, never deleted.
func ResetStatus(db *gorm.DB) error {
	return SetStatus(db, models.DefaultStatus)
}
