package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/benbeisheim/chess-move-validator/internal/middleware"
	"github.com/benbeisheim/chess-move-validator/internal/service"
	"github.com/benbeisheim/chess-move-validator/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	boardService *service.SessionService
}

func NewWebSocketController(boardService *service.SessionService) *WebSocketController {
	return &WebSocketController{
		boardService: boardService,
	}
}

// HandleConnection serves one client on one board until the client goes
// away.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	boardID, _ := c.Locals(middleware.WSBoardIDKey).(string)
	clientID, _ := c.Locals(middleware.WSClientIDKey).(string)

	if err := wsc.boardService.RegisterConnection(boardID, clientID, c); err != nil {
		log.Warnf("board %s: failed to register client %s: %v", boardID, clientID, err)
		reason := err.Error()
		if errors.Is(err, service.ErrAlreadyConnected) {
			reason = "Connection already exists"
		}
		_ = c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason))
		_ = c.Close()
		return
	}
	defer wsc.boardService.UnregisterConnection(boardID, clientID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warnf("board %s: read error from client %s: %v", boardID, clientID, err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(boardID, clientID, "malformed message")
			continue
		}
		if err := wsc.handleMessage(boardID, msg); err != nil {
			log.Debugf("board %s: client %s: %v", boardID, clientID, err)
			wsc.sendError(boardID, clientID, err.Error())
		}
	}
}

func (wsc *WebSocketController) handleMessage(boardID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMoves:
		var text string
		if err := json.Unmarshal(msg.Payload, &text); err != nil {
			return fmt.Errorf("moves payload must be a string: %w", err)
		}
		// Watchers get the new state from the session; only failures are
		// answered here.
		_, err := wsc.boardService.AddMoves(boardID, text)
		return err
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(boardID, clientID, text string) {
	if err := wsc.boardService.SendError(boardID, clientID, text); err != nil {
		log.Warnf("board %s: failed to send error to client %s: %v", boardID, clientID, err)
	}
}
