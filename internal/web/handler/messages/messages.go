// Package messages provides handlers for reading and appending activity log entries.
package messages

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
	// Path is the path to the message list endpoint.
	Path = handler.RootPath + "/messages"

	// SendPath is the path to the message send endpoint.
	SendPath = Path + "/send"

	// MsgSent is returned after a message was appended.
	MsgSent = "Mensajes listos"
)

// Service is the messages handler service.
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
	app.Post(SendPath, s.Send)
}

// List returns the last 20 activity log entries, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	entries, err := activity.Recent(s.db)
	if err != nil {
		return errors.Wrap(err, "failed to read activity log")
	}

	return c.JSON(fiber.Map{"messages": entries})
}

// Send appends a message_sent entry with the supplied text.
// Deliberately unchecked: any role, known or not, may send.
func (s *Service) Send(c *fiber.Ctx) error {
	role := s.roles.Resolve(c)

	var in struct {
		Message string `json:"message"`
	}

	if err := c.BodyParser(&in); err != nil {
		return errors.Wrap(err, "failed to parse message request")
	}

	if err := activity.Append(s.db, activity.ActionMessageSent, string(role), in.Message); err != nil {
		return errors.Wrap(err, "failed to log message")
	}

	return c.JSON(fiber.Map{"success": true, "message": MsgSent})
}
