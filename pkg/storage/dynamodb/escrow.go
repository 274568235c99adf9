package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/campus-market/pkg/models"
	"github.com/chris/campus-market/pkg/storage"
)

const (
	escrowIDIndex   = "id-index"
	escrowStatusGSI = "status-created_at-index"
)

// GetEscrowByOffer retrieves the escrow transaction for an offer.
func (s *Store) GetEscrowByOffer(ctx context.Context, offerID string) (*models.EscrowTransaction, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"offer_id": offerID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal offer ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Escrow),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get escrow from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("escrow for offer %s: %w", offerID, storage.ErrNotFound)
	}

	var escrow models.EscrowTransaction
	if err := attributevalue.UnmarshalMap(result.Item, &escrow); err != nil {
		return nil, fmt.Errorf("failed to unmarshal escrow: %w", err)
	}

	return &escrow, nil
}

// GetEscrow retrieves an escrow transaction by its ID via the id GSI.
func (s *Store) GetEscrow(ctx context.Context, escrowID string) (*models.EscrowTransaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Escrow),
		IndexName:              aws.String(escrowIDIndex),
		KeyConditionExpression: aws.String("id = :escrowID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":escrowID": &types.AttributeValueMemberS{Value: escrowID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query escrow by ID: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, fmt.Errorf("escrow %s: %w", escrowID, storage.ErrNotFound)
	}

	var escrow models.EscrowTransaction
	if err := attributevalue.UnmarshalMap(result.Items[0], &escrow); err != nil {
		return nil, fmt.Errorf("failed to unmarshal escrow: %w", err)
	}

	return &escrow, nil
}

// DecideEscrow applies an admin decision to a held escrow. The update is
// conditional on the escrow still being held, so the state machine never
// regresses out of a terminal decision.
func (s *Store) DecideEscrow(ctx context.Context, escrowID string, decision models.EscrowStatus) (*models.EscrowTransaction, error) {
	// The table is keyed on offer_id; resolve it first.
	escrow, err := s.GetEscrow(ctx, escrowID)
	if err != nil {
		return nil, err
	}

	decisionAV, err := attributevalue.Marshal(decision)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal decision: %w", err)
	}
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Escrow),
		Key:                 map[string]types.AttributeValue{"offer_id": &types.AttributeValueMemberS{Value: escrow.OfferId}},
		UpdateExpression:    aws.String("SET #status = :decision, updated_at = :now"),
		ConditionExpression: aws.String("id = :escrowID AND #status = :held"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":decision": decisionAV,
			":escrowID": &types.AttributeValueMemberS{Value: escrowID},
			":held":     &types.AttributeValueMemberS{Value: string(models.EscrowHeld)},
			":now":      nowAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("escrow %s no longer held: %w", escrowID, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to decide escrow in DynamoDB: %w", err)
	}

	var updated models.EscrowTransaction
	if err := attributevalue.UnmarshalMap(result.Attributes, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal decided escrow: %w", err)
	}

	return &updated, nil
}

// ListEscrowsByStatus retrieves escrow transactions newest first. An
// empty status scans the whole table for the admin overview.
func (s *Store) ListEscrowsByStatus(ctx context.Context, status models.EscrowStatus) ([]models.EscrowTransaction, error) {
	var items []map[string]types.AttributeValue

	if status == "" {
		result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName: aws.String(s.Tables.Escrow),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan escrow table: %w", err)
		}
		items = result.Items
	} else {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.Tables.Escrow),
			IndexName:              aws.String(escrowStatusGSI),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
			ScanIndexForward: aws.Bool(false),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query escrows by status: %w", err)
		}
		items = result.Items
	}

	var escrows []models.EscrowTransaction
	if err := attributevalue.UnmarshalListOfMaps(items, &escrows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal escrows: %w", err)
	}

	return escrows, nil
}

// GetStuckEscrows retrieves escrows that have been held for longer than
// maxAge without an admin decision.
func (s *Store) GetStuckEscrows(ctx context.Context, maxAge time.Duration) ([]models.EscrowTransaction, error) {
	cutoffTime := time.Now().Add(-maxAge)
	cutoffTimeStr, err := cutoffTime.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Escrow),
		IndexName:              aws.String(escrowStatusGSI),
		KeyConditionExpression: aws.String("#status = :status"),
		FilterExpression:       aws.String("created_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.EscrowHeld)},
			":cutoff": &types.AttributeValueMemberS{Value: string(cutoffTimeStr)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for stuck escrows: %w", err)
	}

	var escrows []models.EscrowTransaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &escrows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stuck escrows: %w", err)
	}

	return escrows, nil
}
