package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/chris/campus-market/pkg/models"
	storage_mocks "github.com/chris/campus-market/pkg/storage/mocks"
	"github.com/chris/campus-market/pkg/websockets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type recordingPublisher struct {
	published []websockets.Message
	err       error
}

func (p *recordingPublisher) Publish(ctx context.Context, chatID string, message websockets.Message) error {
	p.published = append(p.published, message)
	return p.err
}

func TestDispatcherNotify(t *testing.T) {
	event := Event{
		Kind:         EventOfferSubmitted,
		ChatID:       "chat-1",
		ActorID:      "buyer-1",
		ProductTitle: "Bike",
		Amount:       300,
	}

	t.Run("Appends And Publishes", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		publisher := &recordingPublisher{}
		dispatcher := NewDispatcher(mockStorage, publisher)

		created := &models.Message{Id: "msg-1", ChatId: "chat-1", SenderId: "buyer-1", Message: Format(event)}
		mockStorage.On("CreateMessage", mock.Anything, mock.MatchedBy(func(msg *models.Message) bool {
			return msg.ChatId == "chat-1" && msg.SenderId == "buyer-1" && msg.Message == Format(event)
		})).Return(created, nil)

		result, err := dispatcher.Notify(context.Background(), event)

		assert.NoError(t, err)
		assert.Equal(t, "msg-1", result.Id)
		assert.Len(t, publisher.published, 1)
		payload := publisher.published[0].Payload.(websockets.ChatMessagePayload)
		assert.Equal(t, "msg-1", payload.MessageID)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Publish Failure Does Not Fail Notify", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		publisher := &recordingPublisher{err: errors.New("gateway unavailable")}
		dispatcher := NewDispatcher(mockStorage, publisher)

		created := &models.Message{Id: "msg-1", ChatId: "chat-1"}
		mockStorage.On("CreateMessage", mock.Anything, mock.Anything).Return(created, nil)

		_, err := dispatcher.Notify(context.Background(), event)

		assert.NoError(t, err)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Append Failure Fails Notify", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		publisher := &recordingPublisher{}
		dispatcher := NewDispatcher(mockStorage, publisher)

		mockStorage.On("CreateMessage", mock.Anything, mock.Anything).Return(nil, errors.New("put failed"))

		_, err := dispatcher.Notify(context.Background(), event)

		assert.Error(t, err)
		assert.Empty(t, publisher.published)
		mockStorage.AssertExpectations(t)
	})
}
