package chats

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/chris/campus-market/pkg/api"
	"github.com/chris/campus-market/pkg/handlers"
	"github.com/chris/campus-market/pkg/mapping"
	"github.com/chris/campus-market/pkg/models"
	"github.com/chris/campus-market/pkg/storage"
	"github.com/chris/campus-market/pkg/websockets"
)

// ChatsHandler holds the dependencies for conversation handlers.
type ChatsHandler struct {
	Store     storage.ApiStore
	Publisher websockets.Publisher
}

// NewChatsHandler creates a new ChatsHandler.
func NewChatsHandler(store storage.ApiStore, publisher websockets.Publisher) *ChatsHandler {
	return &ChatsHandler{Store: store, Publisher: publisher}
}

// ResolveChat handles the logic for opening a conversation thread. The
// call is idempotent: repeated requests for the same product and pair
// converge on the same chat.
func (h *ChatsHandler) ResolveChat(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	var newChat api.NewChat
	if err := json.NewDecoder(r.Body).Decode(&newChat); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	peerID := strings.TrimSpace(newChat.PeerId)
	if peerID == caller.UserID {
		http.Error(w, "Cannot open a chat with yourself", http.StatusUnprocessableEntity)
		return
	}

	var domainChat *models.Chat
	if newChat.ProductId != nil {
		product, err := h.Store.GetProduct(r.Context(), *newChat.ProductId)
		if err != nil {
			handlers.WriteStoreError(w, "resolve chat", err)
			return
		}
		if product.SellerId == caller.UserID {
			if peerID == "" {
				http.Error(w, "A seller-opened chat requires peer_id", http.StatusUnprocessableEntity)
				return
			}
			domainChat = &models.Chat{ProductId: product.Id, BuyerId: peerID, SellerId: caller.UserID}
		} else {
			domainChat = &models.Chat{ProductId: product.Id, BuyerId: caller.UserID, SellerId: product.SellerId}
		}
	} else {
		if peerID == "" {
			http.Error(w, "A direct chat requires peer_id", http.StatusUnprocessableEntity)
			return
		}
		domainChat = &models.Chat{BuyerId: caller.UserID, SellerId: peerID}
	}

	chat, err := h.Store.ResolveOrCreateChat(r.Context(), domainChat)
	if err != nil {
		handlers.WriteStoreError(w, "resolve chat", err)
		return
	}

	apiChat := mapping.ToApiChat(chat)
	handlers.WriteJSON(w, http.StatusOK, apiChat)
}

// ListChats handles the logic for retrieving the caller's conversations.
func (h *ChatsHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	domainChats, err := h.Store.ListChatsByUser(r.Context(), caller.UserID)
	if err != nil {
		handlers.WriteStoreError(w, "retrieve chats", err)
		return
	}

	apiChats := make([]*api.Chat, len(domainChats))
	for i, chat := range domainChats {
		apiChats[i] = mapping.ToApiChat(&chat)
	}

	handlers.WriteJSON(w, http.StatusOK, apiChats)
}

// ListMessages handles the logic for retrieving a chat's messages in
// order of creation.
func (h *ChatsHandler) ListMessages(w http.ResponseWriter, r *http.Request, chatId string) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	chat, err := h.Store.GetChat(r.Context(), chatId)
	if err != nil {
		handlers.WriteStoreError(w, "retrieve messages", err)
		return
	}
	if !h.isParticipant(caller.UserID, chat) && !caller.IsAdmin() {
		handlers.WriteStoreError(w, "retrieve messages", fmt.Errorf("only a chat participant can read messages: %w", storage.ErrPermissionDenied))
		return
	}

	domainMessages, err := h.Store.ListMessages(r.Context(), chatId)
	if err != nil {
		handlers.WriteStoreError(w, "retrieve messages", err)
		return
	}

	apiMessages := make([]*api.Message, len(domainMessages))
	for i, msg := range domainMessages {
		apiMessages[i] = mapping.ToApiMessage(&msg)
	}

	handlers.WriteJSON(w, http.StatusOK, apiMessages)
}

// PostMessage handles the logic for appending a message to a chat and
// fanning it out to live viewers.
func (h *ChatsHandler) PostMessage(w http.ResponseWriter, r *http.Request, chatId string) {
	caller, ok := handlers.Caller(w, r)
	if !ok {
		return
	}

	var newMessage api.NewMessage
	if err := json.NewDecoder(r.Body).Decode(&newMessage); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(newMessage.Message) == "" {
		http.Error(w, "Message body must not be empty", http.StatusUnprocessableEntity)
		return
	}

	chat, err := h.Store.GetChat(r.Context(), chatId)
	if err != nil {
		handlers.WriteStoreError(w, "post message", err)
		return
	}
	if !h.isParticipant(caller.UserID, chat) {
		handlers.WriteStoreError(w, "post message", fmt.Errorf("only a chat participant can post messages: %w", storage.ErrPermissionDenied))
		return
	}

	createdMessage, err := h.Store.CreateMessage(r.Context(), &models.Message{
		ChatId:   chat.Id,
		SenderId: caller.UserID,
		Message:  newMessage.Message,
	})
	if err != nil {
		handlers.WriteStoreError(w, "post message", err)
		return
	}

	// The append is durable at this point; a failed fan-out only costs
	// liveness, subscribers catch up on the next read.
	if err := h.Publisher.Publish(r.Context(), chat.Id, websockets.Message{
		Type: websockets.MessageTypeChatMessage,
		Payload: websockets.ChatMessagePayload{
			ChatID:    createdMessage.ChatId,
			MessageID: createdMessage.Id,
			SenderID:  createdMessage.SenderId,
			Text:      createdMessage.Message,
			CreatedAt: createdMessage.CreatedAt,
		},
	}); err != nil {
		log.Printf("ERROR: failed to publish chat message: %v", err)
	}

	apiMessage := mapping.ToApiMessage(createdMessage)
	handlers.WriteJSON(w, http.StatusCreated, apiMessage)
}

func (h *ChatsHandler) isParticipant(userID string, chat *models.Chat) bool {
	return userID == chat.BuyerId || userID == chat.SellerId
}
