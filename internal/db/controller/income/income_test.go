package income

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

	require.NoError(t, db.AutoMigrate(&models.IncomeRecord{}))

	return db
}

func TestTotalEmpty(t *testing.T) {
	db := setupTestDB(t)

	total, err := Total(db)
	require.NoError(t, err)
	assert.Equal(t, float64(0), total)
}

func TestTotalSumsAmounts(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&[]models.IncomeRecord{
		{Amount: 100.50, Description: "mensualidad"},
		{Amount: 49.50, Description: "visita"},
		{Amount: 250, Description: "anualidad"},
	}).Error)

	total, err := Total(db)
	require.NoError(t, err)
	assert.InDelta(t, 400.0, total, 0.001)
}

func TestRecentLimitAndOrder(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		require.NoError(t, db.Create(&models.IncomeRecord{
			Amount:    float64(i + 1),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	records, err := Recent(db)
	require.NoError(t, err)
	require.Len(t, records, RecentLimit)

	// newest first
	assert.Equal(t, float64(12), records[0].Amount)
	assert.Equal(t, float64(3), records[len(records)-1].Amount)
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].CreatedAt.After(records[i-1].CreatedAt))
	}
}

func TestClear(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&[]models.IncomeRecord{
		{Amount: 10},
		{Amount: 20},
	}).Error)

	require.NoError(t, Clear(db))

	total, err := Total(db)
	require.NoError(t, err)
	assert.Equal(t, float64(0), total)

	records, err := Recent(db)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNilDB(t *testing.T) {
	_, err := Total(nil)
	assert.ErrorIs(t, err, ErrDBNil)

	_, err = Recent(nil)
	assert.ErrorIs(t, err, ErrDBNil)

	assert.ErrorIs(t, Clear(nil), ErrDBNil)
}
