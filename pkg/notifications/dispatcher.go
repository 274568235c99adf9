package notifications

import (
	"context"
	"log/slog"

	"github.com/chris/campus-market/pkg/models"
	"github.com/chris/campus-market/pkg/storage"
	"github.com/chris/campus-market/pkg/websockets"
)

// Dispatcher appends system messages to a chat and fans them out to live
// viewers. The append is the source of truth; a failed publish is logged
// and never fails the caller.
type Dispatcher struct {
	chats     storage.ChatStore
	publisher websockets.Publisher
}

func NewDispatcher(chats storage.ChatStore, publisher websockets.Publisher) *Dispatcher {
	return &Dispatcher{chats: chats, publisher: publisher}
}

// Notify renders the event into a system message, appends it to the
// event's chat and publishes it to subscribed connections.
func (d *Dispatcher) Notify(ctx context.Context, event Event) (*models.Message, error) {
	msg := &models.Message{
		ChatId:   event.ChatID,
		SenderId: event.ActorID,
		Message:  Format(event),
	}

	created, err := d.chats.CreateMessage(ctx, msg)
	if err != nil {
		return nil, err
	}

	if err := d.publisher.Publish(ctx, created.ChatId, websockets.Message{
		Type: websockets.MessageTypeChatMessage,
		Payload: websockets.ChatMessagePayload{
			ChatID:    created.ChatId,
			MessageID: created.Id,
			SenderID:  created.SenderId,
			Text:      created.Message,
			CreatedAt: created.CreatedAt,
		},
	}); err != nil {
		slog.Error("Failed to publish system message", "chatID", created.ChatId, "error", err)
	}

	return created, nil
}
