package controller

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/benbeisheim/chess-move-validator/internal/model"
	"github.com/benbeisheim/chess-move-validator/internal/service"
	"github.com/benbeisheim/chess-move-validator/internal/ws"
)

func TestHandleMessage(t *testing.T) {
	svc := service.NewSessionService(service.NewSessionManager())
	id, err := svc.CreateBoard()
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	wsc := NewWebSocketController(svc)

	msg, err := ws.NewMessage(ws.MessageTypeMoves, "1. Nf3 Nf6")
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}
	if err := wsc.handleMessage(id, msg); err != nil {
		t.Fatalf("handleMessage: %v", err)
	}
	if state, _ := svc.GetBoardState(id); state.Plies != 2 {
		t.Fatalf("expected 2 plies, got %d", state.Plies)
	}

	illegal, _ := ws.NewMessage(ws.MessageTypeMoves, "2. Ke3")
	if err := wsc.handleMessage(id, illegal); !errors.Is(err, model.ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}

	notText := ws.Message{Type: ws.MessageTypeMoves, Payload: json.RawMessage(`{"moves":"e4"}`)}
	if err := wsc.handleMessage(id, notText); err == nil {
		t.Fatalf("expected an error for a non-string payload")
	}
	if err := wsc.handleMessage(id, ws.Message{Type: "resign"}); err == nil {
		t.Fatalf("expected an error for an unknown message type")
	}
}
