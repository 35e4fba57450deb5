// Package control provides the handler for activating the control panel.
package control

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ventastarango2700-netizen/unofitmx/internal/auth"
	"github.com/ventastarango2700-netizen/unofitmx/internal/config"
	"github.com/ventastarango2700-netizen/unofitmx/internal/db/controller/activity"
	"github.com/ventastarango2700-netizen/unofitmx/internal/web/handler"
)

const (
	// Path is the path to the control activation endpoint.
	Path = handler.RootPath + "/control/activate"

	// MsgActivated is returned on successful activation.
	MsgActivated = "Control activo"

	// MsgDenied is shown when the role may not manage the control panel.
	MsgDenied = "No tienes permiso para activar el control"
)

// Service is the control handler service.
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

	app.Post(Path, s.Activate)
}

// Activate is gated on the manage-control capability. The activation itself
// is only recorded in the activity log; there is no further side effect.
func (s *Service) Activate(c *fiber.Ctx) error {
	role := s.roles.Resolve(c)

	if !auth.Can(role, auth.CapManageControl) {
		log.Warn().Str("role", string(role)).Msg("control activation denied")

		if err := activity.Append(s.db, activity.ActionControlActivationDenied, string(role), "attempted"); err != nil {
			return errors.Wrap(err, "failed to log denied control activation")
		}

		return handler.Unauthorized(c, MsgDenied)
	}

	if err := activity.Append(s.db, activity.ActionControlActivated, string(role), "success"); err != nil {
		return errors.Wrap(err, "failed to log control activation")
	}

	return c.JSON(fiber.Map{"success": true, "message": MsgActivated})
}
