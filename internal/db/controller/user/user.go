// Package user provides read operations for dashboard user accounts.
package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ventastarango2700-netizen/unofitmx/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Row is the projection of a user returned to clients.
// CreatedAt is deliberately not part of the wire shape.
type Row struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// List retrieves all users ordered by id.
func List(db *gorm.DB) ([]Row, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	rows := make([]Row, 0)
	result := db.Model(&models.User{}).
		Select("id", "name", "role", "active").
		Order("id").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// Count returns the number of user accounts.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.User{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
