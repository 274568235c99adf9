package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/campus-market/pkg/models"
	"github.com/chris/campus-market/pkg/storage"
	"github.com/google/uuid"
)

const (
	chatIDIndex   = "id-index"
	chatBuyerGSI  = "buyer_id-index"
	chatSellerGSI = "seller_id-index"
)

// chatKey derives the deterministic uniqueness key for a conversation.
// Product threads key on (product, buyer); the seller is fixed by the
// product. Direct threads key on the unordered user pair, so either
// ordering of the participants resolves to the same row.
func chatKey(chat *models.Chat) string {
	if chat.ProductId != "" {
		return strings.Join([]string{"product", chat.ProductId, "buyer", chat.BuyerId}, "#")
	}
	pair := []string{chat.BuyerId, chat.SellerId}
	sort.Strings(pair)
	return strings.Join([]string{"direct", pair[0], pair[1]}, "#")
}

// ResolveOrCreateChat returns the chat for the given key, creating it if
// absent. The conditional put plus fetch-on-conflict makes the operation
// idempotent under concurrent invocation: exactly one row per key exists
// afterwards, whichever caller wins the race.
func (s *Store) ResolveOrCreateChat(ctx context.Context, chat *models.Chat) (*models.Chat, error) {
	chat.ChatKey = chatKey(chat)
	chat.Id = uuid.New().String()
	chat.CreatedAt = time.Now()

	chatAV, err := attributevalue.MarshalMap(chat)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Chats),
		Item:                chatAV,
		ConditionExpression: aws.String("attribute_not_exists(chat_key)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if !errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("failed to create chat in DynamoDB: %w", err)
		}
		// Lost the race or the chat already existed; fetch the winner.
		return s.getChatByKey(ctx, chat.ChatKey)
	}

	return chat, nil
}

func (s *Store) getChatByKey(ctx context.Context, key string) (*models.Chat, error) {
	keyAV, err := attributevalue.MarshalMap(map[string]string{"chat_key": key})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat key: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Chats),
		Key:       keyAV,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get chat from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("chat with key %s: %w", key, storage.ErrNotFound)
	}

	var chat models.Chat
	if err := attributevalue.UnmarshalMap(result.Item, &chat); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chat: %w", err)
	}

	return &chat, nil
}

// GetChat retrieves a chat by its ID via the id GSI.
func (s *Store) GetChat(ctx context.Context, chatID string) (*models.Chat, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Chats),
		IndexName:              aws.String(chatIDIndex),
		KeyConditionExpression: aws.String("id = :chatID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":chatID": &types.AttributeValueMemberS{Value: chatID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat by ID: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, fmt.Errorf("chat %s: %w", chatID, storage.ErrNotFound)
	}

	var chat models.Chat
	if err := attributevalue.UnmarshalMap(result.Items[0], &chat); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chat: %w", err)
	}

	return &chat, nil
}

// ListChatsByUser retrieves the chats a user participates in on either
// side, newest first.
func (s *Store) ListChatsByUser(ctx context.Context, userID string) ([]models.Chat, error) {
	var chats []models.Chat

	for _, index := range []string{chatBuyerGSI, chatSellerGSI} {
		keyAttr := "buyer_id"
		if index == chatSellerGSI {
			keyAttr = "seller_id"
		}

		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.Tables.Chats),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String(keyAttr + " = :userID"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":userID": &types.AttributeValueMemberS{Value: userID},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query chats by user: %w", err)
		}

		var page []models.Chat
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal chats: %w", err)
		}
		chats = append(chats, page...)
	}

	sort.Slice(chats, func(i, j int) bool {
		return chats[i].CreatedAt.After(chats[j].CreatedAt)
	})

	return chats, nil
}
