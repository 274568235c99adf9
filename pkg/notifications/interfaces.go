package notifications

import (
	"context"

	"github.com/chris/campus-market/pkg/models"
)

// Notifier defines the interface for narrating state transitions into a
// conversation.
type Notifier interface {
	Notify(ctx context.Context, event Event) (*models.Message, error)
}

var _ Notifier = (*Dispatcher)(nil)

// NoOpNotifier is a Notifier that does nothing. Useful for tests.
type NoOpNotifier struct{}

func (n *NoOpNotifier) Notify(ctx context.Context, event Event) (*models.Message, error) {
	return &models.Message{ChatId: event.ChatID, SenderId: event.ActorID, Message: Format(event)}, nil
}
