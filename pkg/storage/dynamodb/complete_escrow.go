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

// CompleteEscrow performs the final settlement of an escrow: the escrow
// moves from admin_approved to completed and the owning product is marked
// sold, in one atomic write. The escrow condition guards regression from
// terminal states; a failed condition surfaces as ErrConflict.
func (s *Store) CompleteEscrow(ctx context.Context, escrow *models.EscrowTransaction) (*models.EscrowTransaction, error) {
	now := time.Now()

	completedStatusAV, err := attributevalue.Marshal(models.EscrowCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completed status: %w", err)
	}
	soldStatusAV, err := attributevalue.Marshal(models.SOLD)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sold status: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Complete the escrow transaction.
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Escrow),
					Key:                 map[string]types.AttributeValue{"offer_id": &types.AttributeValueMemberS{Value: escrow.OfferId}},
					UpdateExpression:    aws.String("SET #status = :completed_status, updated_at = :now"),
					ConditionExpression: aws.String("id = :escrowID AND #status = :approved_status"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":completed_status": completedStatusAV,
						":approved_status":  &types.AttributeValueMemberS{Value: string(models.EscrowAdminApproved)},
						":escrowID":         &types.AttributeValueMemberS{Value: escrow.Id},
						":now":              nowAV,
					},
				},
			},
			{
				// Operation 2: Mark the product sold.
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Products),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: escrow.ProductId}},
					UpdateExpression:    aws.String("SET #status = :sold_status"),
					ConditionExpression: aws.String("attribute_exists(id)"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":sold_status": soldStatusAV,
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return nil, fmt.Errorf("escrow %s not completable: %w", escrow.Id, storage.ErrConflict)
				}
			}
		}
		return nil, fmt.Errorf("failed to execute settlement transaction: %w", err)
	}

	completed := *escrow
	completed.Status = models.EscrowCompleted
	completed.UpdatedAt = now
	return &completed, nil
}
