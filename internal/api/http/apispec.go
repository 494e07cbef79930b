package http

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed openapi.json
var openAPISpec []byte

// ServeAPISpec returns the machine-readable description of the RPC
// surface. Read-only and unauthenticated.
func ServeAPISpec(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(openAPISpec)
}
