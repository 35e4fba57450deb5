// Package reset provides the handler for restoring the system to its defaults.
package reset

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ventastarango2700-netizen/unofitmx/internal/auth"
	"github.com/ventastarango2700-netizen/unofitmx/internal/config"
	"github.com/ventastarango2700-netizen/unofitmx/internal/db/controller/activity"
	incomectl "github.com/ventastarango2700-netizen/unofitmx/internal/db/controller/income"
	"github.com/ventastarango2700-netizen/unofitmx/internal/db/controller/systemstate"
	"github.com/ventastarango2700-netizen/unofitmx/internal/web/handler"
)

const (
	// Path is the path to the reset endpoint.
	Path = handler.RootPath + "/reset"

	// MsgReset is returned after a completed reset.
	MsgReset = "Estado reiniciado"
)

// Service is the reset handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	db    *gorm.DB
	roles auth.RoleProvider
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, roles auth.RoleProvider) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg
	s.roles = roles

	app.Post(Path, s.Post)
}

// Post empties the activity log and income records, restores the default
// status and appends a single system_reset entry. Deliberately unchecked,
// and the statement sequence is not transactional: a mid-sequence failure
// leaves the store partially reset.
func (s *Service) Post(c *fiber.Ctx) error {
	if err := activity.Clear(s.db); err != nil {
		return errors.Wrap(err, "failed to clear activity log")
	}

	if err := incomectl.Clear(s.db); err != nil {
		return errors.Wrap(err, "failed to clear income records")
	}

	if err := systemstate.ResetStatus(s.db); err != nil {
		return errors.Wrap(err, "failed to reset system status")
	}

	if err := activity.Append(s.db, activity.ActionSystemReset, activity.SystemRole, "full reset"); err != nil {
		return errors.Wrap(err, "failed to log system reset")
	}

	log.Info().Msg("system reset completed")

	return c.JSON(fiber.Map{"success": true, "message": MsgReset})
}
