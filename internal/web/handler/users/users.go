// Package users provides handlers for listing and reviewing user accounts.
package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ventastarango2700-netizen/unofitmx/internal/auth"
	"github.com/ventastarango2700-netizen/unofitmx/internal/config"
	"github.com/ventastarango2700-netizen/unofitmx/internal/db/controller/activity"
	"github.com/ventastarango2700-netizen/unofitmx/internal/db/controller/user"
	"github.com/ventastarango2700-netizen/unofitmx/internal/web/handler"
)

const (
	// Path is the path to the user list endpoint.
	Path = handler.RootPath + "/users"

	// CheckPath is the path to the user review endpoint.
	CheckPath = Path + "/check"

	// MsgFullAccess is returned when the role holds manage-users.
	MsgFullAccess = "Usuarios OK"

	// MsgReadOnly is returned when the role lacks manage-users. The request
	// still succeeds; it degrades to a read-only listing instead of a 403.
	MsgReadOnly = "Usuarios OK (solo lectura)"
)

// Service is the users handler service.
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

	app.Get(Path, s.List)
	app.Post(CheckPath, s.Check)
}

// List returns all users ordered by id. No capability check.
func (s *Service) List(c *fiber.Ctx) error {
	rows, err := user.List(s.db)
	if err != nil {
		return errors.Wrap(err, "failed to list users")
	}

	return c.JSON(fiber.Map{"users": rows})
}

// Check returns the user list for every role. Holding manage-users upgrades
// the response to canManage and appends a users_reviewed log entry; lacking
// it never denies, it only degrades to read-only.
func (s *Service) Check(c *fiber.Ctx) error {
	role := s.roles.Resolve(c)

	rows, err := user.List(s.db)
	if err != nil {
		return errors.Wrap(err, "failed to list users")
	}

	if !auth.Can(role, auth.CapManageUsers) {
		return c.JSON(fiber.Map{
			"success":   true,
			"canManage": false,
			"users":     rows,
			"message":   MsgReadOnly,
		})
	}

	if err := activity.Append(s.db, activity.ActionUsersReviewed, string(role), "full access"); err != nil {
		return errors.Wrap(err, "failed to log user review")
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"canManage": true,
		"users":     rows,
		"message":   MsgFullAccess,
	})
}
