package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/campus-market/pkg/models"
	"github.com/chris/campus-market/pkg/storage"
	"github.com/google/uuid"
)

const productSwapsGSI = "product_id-created_at-index"

// CreateSwap validates the proposal against the listing's terms and
// creates a new pending swap record. When a specific item is proposed it
// must be an active listing owned by the proposer.
func (s *Store) CreateSwap(ctx context.Context, swap *models.Swap) (*models.Swap, error) {
	product, err := s.GetProduct(ctx, swap.ProductId)
	if err != nil {
		return nil, err
	}
	if product.Status != models.ACTIVE {
		return nil, storage.ErrListingNotActive
	}
	if product.TransactionType != models.SWAP && product.TransactionType != models.BOTH {
		return nil, storage.ErrIncompatibleListing
	}
	if swap.ProposerId == product.SellerId {
		return nil, storage.ErrOwnListing
	}

	if swap.ProposedProductId != "" {
		proposed, err := s.GetProduct(ctx, swap.ProposedProductId)
		if err != nil {
			return nil, err
		}
		if proposed.SellerId != swap.ProposerId {
			return nil, storage.ErrForeignProposedItem
		}
		if proposed.Status != models.ACTIVE {
			return nil, storage.ErrListingNotActive
		}
	}

	now := time.Now()
	swap.Id = uuid.New().String()
	swap.Status = models.SwapPending
	swap.CreatedAt = now
	swap.UpdatedAt = now

	slog.Log(ctx, slog.LevelDebug, "creating swap", "swap", swap)

	swapAV, err := attributevalue.MarshalMap(swap)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal swap: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Swaps),
		Item:                swapAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create swap in DynamoDB: %w", err)
	}

	return swap, nil
}

// ResolveSwap applies a status transition conditional on the swap
// currently holding the expected status. Used both for the seller's
// accept/reject decision and the later completed confirmation.
func (s *Store) ResolveSwap(ctx context.Context, swapID string, expected, decision models.SwapStatus) (*models.Swap, error) {
	decisionAV, err := attributevalue.Marshal(decision)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal decision: %w", err)
	}
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Swaps),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: swapID}},
		UpdateExpression:    aws.String("SET #status = :decision, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND #status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":decision": decisionAV,
			":expected": &types.AttributeValueMemberS{Value: string(expected)},
			":now":      nowAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			if _, getErr := s.GetSwap(ctx, swapID); getErr != nil {
				return nil, getErr
			}
			return nil, fmt.Errorf("swap %s not in %s state: %w", swapID, expected, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to resolve swap in DynamoDB: %w", err)
	}

	var swap models.Swap
	if err := attributevalue.UnmarshalMap(result.Attributes, &swap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resolved swap: %w", err)
	}

	return &swap, nil
}

// GetSwap retrieves a swap proposal from DynamoDB by its ID.
func (s *Store) GetSwap(ctx context.Context, swapID string) (*models.Swap, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": swapID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal swap ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Swaps),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get swap from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("swap %s: %w", swapID, storage.ErrNotFound)
	}

	var swap models.Swap
	if err := attributevalue.UnmarshalMap(result.Item, &swap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swap: %w", err)
	}

	return &swap, nil
}

// ListSwapsByProduct retrieves swap proposals for a product, newest
// first, optionally narrowed to a single proposer.
func (s *Store) ListSwapsByProduct(ctx context.Context, productID, proposerID string) ([]models.Swap, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Swaps),
		IndexName:              aws.String(productSwapsGSI),
		KeyConditionExpression: aws.String("product_id = :productID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":productID": &types.AttributeValueMemberS{Value: productID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	if proposerID != "" {
		input.FilterExpression = aws.String("proposer_id = :proposerID")
		input.ExpressionAttributeValues[":proposerID"] = &types.AttributeValueMemberS{Value: proposerID}
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query swaps by product: %w", err)
	}

	var swaps []models.Swap
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &swaps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swaps: %w", err)
	}

	return swaps, nil
}
