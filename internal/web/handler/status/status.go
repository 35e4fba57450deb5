// Package status provides handlers for the system status singleton.
package status

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ventastarango2700-netizen/unofitmx/internal/auth"
	"github.com/ventastarango2700-netizen/unofitmx/internal/config"
	"github.com/ventastarango2700-netizen/unofitmx/internal/db/controller/activity"
	"github.com/ventastarango2700-netizen/unofitmx/internal/db/controller/systemstate"
	"github.com/ventastarango2700-netizen/unofitmx/internal/web/handler"
)

const (
	// Path is the path to the status endpoints.
	Path = handler.RootPath + "/status"

	// MsgDenied is shown when the role may not change the status.
	MsgDenied = "No tienes permiso para cambiar el estado"
)

// Service is the status handler service.
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

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)
}

// Get reads the status singleton.
func (s *Service) Get(c *fiber.Ctx) error {
	status, err := systemstate.GetStatus(s.db)
	if err != nil {
		return errors.Wrap(err, "failed to read system status")
	}

	return c.JSON(fiber.Map{"status": status})
}

// Post updates the status singleton, gated on the change-status capability.
// A denial is logged as status_change_denied, a success as status_changed.
func (s *Service) Post(c *fiber.Ctx) error {
	role := s.roles.Resolve(c)

	var in struct {
		NewStatus string `json:"newStatus"`
	}

	if err := c.BodyParser(&in); err != nil {
		return errors.Wrap(err, "failed to parse status request")
	}

	if !auth.Can(role, auth.CapChangeStatus) {
		log.Warn().Str("role", string(role)).Msg("status change denied")

		if err := activity.Append(s.db, activity.ActionStatusChangeDenied, string(role), in.NewStatus); err != nil {
			return errors.Wrap(err, "failed to log denied status change")
		}

		return handler.Unauthorized(c, MsgDenied)
	}

	if err := systemstate.SetStatus(s.db, in.NewStatus); err != nil {
		return errors.Wrap(err, "failed to update system status")
	}

	if err := activity.Append(s.db, activity.ActionStatusChanged, string(role), in.NewStatus); err != nil {
		return errors.Wrap(err, "failed to log status change")
	}

	return c.JSON(fiber.Map{"success": true, "status": in.NewStatus})
}
