package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

const (
	WSBoardIDKey  = "wsBoardID"
	WSClientIDKey = "wsClientID"
)

// WebSocketUpgrade lets through only WebSocket upgrade requests that name a
// board and carry a client ID. The IDs are copied into Locals because the
// connection no longer has the request context.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		boardID := c.Params("boardId")
		if boardID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "board ID is required",
			})
		}

		clientID := ClientID(c)
		if clientID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "client ID is required",
			})
		}

		c.Locals(WSBoardIDKey, boardID)
		c.Locals(WSClientIDKey, clientID)
		return c.Next()
	}
}
