package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/campus-market/pkg/models"
	"github.com/google/uuid"
)

const chatMessagesGSI = "chat_id-created_at-index"

// CreateMessage appends a message to a chat with a server-assigned id and
// timestamp. Messages are append-only; nothing in this core deletes them.
func (s *Store) CreateMessage(ctx context.Context, msg *models.Message) (*models.Message, error) {
	msg.Id = uuid.New().String()
	msg.CreatedAt = time.Now()

	msgAV, err := attributevalue.MarshalMap(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Messages),
		Item:                msgAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create message in DynamoDB: %w", err)
	}

	return msg, nil
}

// ListMessages retrieves a chat's message history ordered by created_at
// ascending.
func (s *Store) ListMessages(ctx context.Context, chatID string) ([]models.Message, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Messages),
		IndexName:              aws.String(chatMessagesGSI),
		KeyConditionExpression: aws.String("chat_id = :chatID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":chatID": &types.AttributeValueMemberS{Value: chatID},
		},
		ScanIndexForward: aws.Bool(true), // Sort by created_at in ascending order
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages by chat: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}

	return messages, nil
}
