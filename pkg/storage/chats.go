package storage

import (
	"context"

	"github.com/chris/campus-market/pkg/models"
)

// ChatStore defines the interface for conversation threads and messages.
type ChatStore interface {
	// ResolveOrCreateChat returns the existing chat for the given key
	// (product plus buyer/seller pair, or the unordered pair for direct
	// threads) or creates it. This is the idempotency boundary for the
	// whole engine: concurrent calls with the same key must converge on
	// a single chat row.
	ResolveOrCreateChat(ctx context.Context, chat *models.Chat) (*models.Chat, error)

	// GetChat retrieves a chat by its ID.
	GetChat(ctx context.Context, chatID string) (*models.Chat, error)

	// ListChatsByUser retrieves the chats a user participates in, newest
	// first.
	ListChatsByUser(ctx context.Context, userID string) ([]models.Chat, error)

	// CreateMessage appends a message with a server-assigned id and
	// timestamp.
	CreateMessage(ctx context.Context, msg *models.Message) (*models.Message, error)

	// ListMessages retrieves a chat's messages ordered by created_at
	// ascending.
	ListMessages(ctx context.Context, chatID string) ([]models.Message, error)
}
