package websockets

import "time"

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeChatMessage is for newly appended chat messages.
	MessageTypeChatMessage MessageType = "chatMessage"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// ChatMessagePayload is the payload for a chatMessage message. Delivery
// is at-least-once; subscribers deduplicate on MessageID and order on
// CreatedAt.
type ChatMessagePayload struct {
	ChatID    string    `json:"chat_id"`
	MessageID string    `json:"message_id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
