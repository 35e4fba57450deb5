// Package income provides the handler for the income overview.
package income

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ventastarango2700-netizen/unofitmx/internal/auth"
	"github.com/ventastarango2700-netizen/unofitmx/internal/config"
	incomectl "github.com/ventastarango2700-netizen/unofitmx/internal/db/controller/income"
	"github.com/ventastarango2700-netizen/unofitmx/internal/web/handler"
)

const (
	// Path is the path to the income endpoint.
	Path = handler.RootPath + "/income"

	// MsgMonitored is returned with the income overview.
	MsgMonitored = "Ingresos monitoreados"

	// MsgDenied is shown when the role may not view income.
	MsgDenied = "No tienes permiso para ver ingresos"
)

// Service is the income handler service.
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
}

// Get returns the income total and the 10 most recent records, gated on the
// view-income capability. A denial here writes no activity log entry; the
// other gated endpoints do log denials.
func (s *Service) Get(c *fiber.Ctx) error {
	role := s.roles.Resolve(c)

	if !auth.Can(role, auth.CapViewIncome) {
		log.Warn().Str("role", string(role)).Msg("income view denied")

		return handler.Unauthorized(c, MsgDenied)
	}

	total, err := incomectl.Total(s.db)
	if err != nil {
		return errors.Wrap(err, "failed to sum income records")
	}

	recent, err := incomectl.Recent(s.db)
	if err != nil {
		return errors.Wrap(err, "failed to list recent income records")
	}

	return c.JSON(fiber.Map{
		"total":   total,
		"recent":  recent,
		"message": MsgMonitored,
	})
}
