package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages exchanged on a
// board session.
type MessageType string

const (
	// MessageTypeMoves carries move text from a client, as a JSON string.
	MessageTypeMoves MessageType = "moves"
	// MessageTypeBoardState carries the board state to every client.
	MessageTypeBoardState MessageType = "boardState"
	MessageTypeError      MessageType = "error"
)

type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NewMessage marshals payload into a message of type t.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}

// ErrorMessage wraps text as a JSON string payload.
func ErrorMessage(text string) Message {
	raw, _ := json.Marshal(text)
	return Message{Type: MessageTypeError, Payload: raw}
}
