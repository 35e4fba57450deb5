// Package income provides read and bulk-delete operations for income records.
package income

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ventastarango2700-netizen/unofitmx/internal/db/models"
)

const (
	// RecentLimit is the fixed number of records returned by Recent.
	RecentLimit = 10
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Total returns the sum of all income record amounts, 0 when none exist.
func Total(db *gorm.DB) (float64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var total *float64
	result := db.Model(&models.IncomeRecord{}).
		Select("SUM(amount)").
		Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	// SUM over an empty table is NULL
	if total == nil {
		return 0, nil
	}

	return *total, nil
}

// Recent retrieves the most recent income records, newest first.
func Recent(db *gorm.DB) ([]models.IncomeRecord, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	records := make([]models.IncomeRecord, 0)
	result := db.Order("created_at DESC").Limit(RecentLimit).Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

// Clear deletes all income records. Used by the system reset only.
func Clear(db *gorm.DB) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("1 = 1").Delete(&models.IncomeRecord{})

	return result.Error
}
