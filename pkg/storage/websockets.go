package storage

import "context"

// WebSocketManager defines the interface for storing and retrieving
// WebSocket connection IDs, grouped by the chat each viewer subscribed to.
type WebSocketManager interface {
	AddConnection(ctx context.Context, connectionID, chatID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
	GetConnectionsByChat(ctx context.Context, chatID string) ([]string, error)
}
