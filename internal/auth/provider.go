package auth

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// RoleProvider resolves the acting role for a request.
// Handlers depend on this interface instead of reading the request directly
// so verified identity can replace the client-asserted role later.
type RoleProvider interface {
	Resolve(c *fiber.Ctx) Role
}

// RequestRole is the default RoleProvider. It trusts the role the client
// supplies with the request: the "role" query parameter on GET requests,
// the "role" JSON body field on POST requests.
type RequestRole struct{}

var _ RoleProvider = RequestRole{}

// Resolve extracts the client-asserted role from the request.
// Returns the empty role when none is supplied, which fails every
// capability check.
func (RequestRole) Resolve(c *fiber.Ctx) Role {
	if role := c.Query("role"); role != "" {
		return Role(role)
	}

	// fiber buffers the body, so peeking here does not consume it
	// for a later BodyParser call in the handler.
	var body struct {
		Role string `json:"role"`
	}

	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return ""
	}

	return Role(body.Role)
}
