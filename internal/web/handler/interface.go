package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ventastarango2700-netizen/unofitmx/internal/auth"
	"github.com/ventastarango2700-netizen/unofitmx/internal/config"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, db *gorm.DB, roles auth.RoleProvider)
}
