package models

import "time"

// User represents a dashboard user account.
// Users are created only by the initial seeding; there is no create, update
// or delete endpoint for them. The role tag is informational here: the role
// that gates a request is the one the client asserts, not the one stored.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Name is the display name of the user.
	Name string `gorm:"size:255;not null" json:"name"`
	// Role is the role tag assigned to the user (ADM, GT or EV).
	Role string `gorm:"size:10;not null" json:"role"`
	// Active indicates whether the account is active.
	Active bool `gorm:"default:true" json:"active"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time `json:"-"`
}

// TableName specifies the database table name for the User model.
// This overrides GORM's default pluralized table naming.
func (User) TableName() string {
	return "users"
}
