package activity

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ventastarango2700-netizen/unofitmx/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	require.NoError(t, db.AutoMigrate(&models.ActivityLog{}))

	return db
}

func TestAppend(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Append(db, ActionStatusChanged, "ADM", "Sistema en mantenimiento"))

	var entry models.ActivityLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, ActionStatusChanged, entry.Action)
	assert.Equal(t, "ADM", entry.UserRole)
	assert.Equal(t, "Sistema en mantenimiento", entry.Details)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestAppendEmptyRole(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Append(db, ActionMessageSent, "", "hola"))

	var entry models.ActivityLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "", entry.UserRole)
}

func TestRecentLimitAndOrder(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		require.NoError(t, db.Create(&models.ActivityLog{
			Action:    ActionMessageSent,
			Details:   "msg",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}).Error)
	}

	entries, err := Recent(db)
	require.NoError(t, err)
	require.Len(t, entries, RecentLimit)

	// newest first
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].CreatedAt.After(entries[i-1].CreatedAt))
	}
	assert.Equal(t, base.Add(24*time.Second).Unix(), entries[0].CreatedAt.Unix())
}

func TestClearAndCount(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Append(db, ActionSystemReset, SystemRole, "full reset"))
	require.NoError(t, Append(db, ActionMessageSent, "GT", "hola"))

	count, err := Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, Clear(db))

	count, err = Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestNilDB(t *testing.T) {
	assert.ErrorIs(t, Append(nil, ActionMessageSent, "", ""), ErrDBNil)

	_, err := Recent(nil)
	assert.ErrorIs(t, err, ErrDBNil)

	_, err = Count(nil)
	assert.ErrorIs(t, err, ErrDBNil)

	assert.ErrorIs(t, Clear(nil), ErrDBNil)
}
