package systemstate

import (
	"testing"

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

	require.NoError(t, db.AutoMigrate(&models.SystemState{}))

	return db
}

func seedStatus(t *testing.T, db *gorm.DB, value string) {
	t.Helper()

	require.NoError(t, db.Create(&models.SystemState{Key: models.StatusKey, Value: value}).Error)
}

func TestGetStatusMissingRowReturnsDefault(t *testing.T) {
	db := setupTestDB(t)

	status, err := GetStatus(db)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultStatus, status)
}

func TestGetStatus(t *testing.T) {
	db := setupTestDB(t)
	seedStatus(t, db, "Sistema en mantenimiento")

	status, err := GetStatus(db)
	require.NoError(t, err)
	assert.Equal(t, "Sistema en mantenimiento", status)
}

func TestSetStatus(t *testing.T) {
	db := setupTestDB(t)
	seedStatus(t, db, models.DefaultStatus)

	require.NoError(t, SetStatus(db, "Cerrado por limpieza"))

	status, err := GetStatus(db)
	require.NoError(t, err)
	assert.Equal(t, "Cerrado por limpieza", status)
}

func TestSetStatusAcceptsEmptyString(t *testing.T) {
	db := setupTestDB(t)
	seedStatus(t, db, models.DefaultStatus)

	require.NoError(t, SetStatus(db, ""))

	status, err := GetStatus(db)
	require.NoError(t, err)
	assert.Equal(t, "", status)
}

func TestResetStatusKeepsRow(t *testing.T) {
	db := setupTestDB(t)
	seedStatus(t, db, "algo raro")

	require.NoError(t, ResetStatus(db))

	status, err := GetStatus(db)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultStatus, status)

	var count int64
	require.NoError(t, db.Model(&models.SystemState{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "reset must update the singleton, not recreate it")
}

func TestNilDB(t *testing.T) {
	_, err := GetStatus(nil)
	assert.ErrorIs(t, err, ErrDBNil)

	assert.ErrorIs(t, SetStatus(nil, "x"), ErrDBNil)
}
