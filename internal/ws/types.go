package ws

import (
	"encoding/json"
)

// MessageType discriminates the kinds of websocket messages the server
// understands.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeUndo      MessageType = "undo"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope for every websocket frame.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}
