package handler

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON shape of every error surfaced to clients.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Unauthorized writes a 403 response with the given user-facing message.
func Unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
		Error: message,
		Code:  CodeUnauthorized,
	})
}

// NotFound writes the 404 response for unmatched routes.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
		Error: MsgNotFound,
		Code:  CodeNotFound,
	})
}
