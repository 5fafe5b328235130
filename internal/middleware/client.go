package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const (
	ClientIDHeader = "X-Client-ID"
	ClientIDQuery  = "clientId"
	clientIDKey    = "clientID"
)

// EnsureClientID requires a client identity on every request, from the
// X-Client-ID header or the clientId query parameter, and stores it in
// Locals.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(clientIDKey) != nil {
			return c.Next()
		}

		clientID := c.Get(ClientIDHeader)
		if clientID == "" {
			clientID = c.Query(ClientIDQuery)
		}

		if clientID == "" {
			log.Debugf("rejected %s %s: no client ID", c.Method(), c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Client ID is required. Send the X-Client-ID header or the clientId query parameter.",
			})
		}

		c.Locals(clientIDKey, clientID)
		return c.Next()
	}
}

// ClientID returns the identity stored by EnsureClientID.
func ClientID(c *fiber.Ctx) string {
	id, _ := c.Locals(clientIDKey).(string)
	return id
}
