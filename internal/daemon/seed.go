package daemon

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ventastarango2700-netizen/unofitmx/internal/auth"
	"github.com/ventastarango2700-netizen/unofitmx/internal/config"
	"github.com/ventastarango2700-netizen/unofitmx/internal/db/models"
)

// seed installs the default data if it is missing.
//
// The routine is idempotent and safe to repeat: each existence check runs
// immediately before its insert. Two racing cold starts can still both pass
// a check and double-seed; that is tolerated, duplicates are harmless here.
func seed(_ *config.Config, db *gorm.DB) {
	seedStatus(db)
	seedUsers(db)
}

// seedStatus inserts the status singleton with its default value.
func seedStatus(db *gorm.DB) {
	var state models.SystemState

	err := db.Where("key = ?", models.StatusKey).First(&state).Error
	if err == nil {
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("failed to check status singleton")
		return
	}

	if err := db.Create(&models.SystemState{
		Key:   models.StatusKey,
		Value: models.DefaultStatus,
	}).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed status singleton")
	}
}

// seedUsers inserts the three fixed accounts, one per role.
func seedUsers(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Error().Err(err).Msg("failed to count users")
		return
	}

	if count > 0 {
		return
	}

	users := []models.User{
		{Name: "Admin", Role: string(auth.RoleAdmin), Active: true},
		{Name: "Gerente", Role: string(auth.RoleManager), Active: true},
		{Name: "Evaluador", Role: string(auth.RoleEvaluator), Active: true},
	}

	if err := db.Create(&users).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed users")
	}
}
