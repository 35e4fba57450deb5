package models

import "time"

// IncomeRecord represents a single income entry.
// Records are read through the sum-and-recent-list endpoint and deleted in
// bulk by a system reset; no endpoint creates them.
type IncomeRecord struct {
	// ID is the unique identifier for the record.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Amount is the income amount.
	Amount float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	// Description is a free-text description of the income.
	Description string `gorm:"size:255" json:"description"`
	// CreatedBy references the user that recorded the income.
	CreatedBy *uint64 `gorm:"column:created_by" json:"created_by"`
	// CreatedAt is the timestamp when the record was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the database table name for the IncomeRecord model.
// This overrides GORM's default pluralized table naming.
func (IncomeRecord) TableName() string {
	return "income_records"
}
