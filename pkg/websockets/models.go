package websockets

import "github.com/chris/coin-bank/pkg/api"

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeReserveUpdate is sent after a reserve's coin count changes.
	MessageTypeReserveUpdate MessageType = "reserveUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// ReserveUpdatePayload is the payload for a reserveUpdate message.
type ReserveUpdatePayload struct {
	Operation string       `json:"operation"`
	Requested uint         `json:"requested"`
	Reserve   *api.Reserve `json:"reserve"`
}
