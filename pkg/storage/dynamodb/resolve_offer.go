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

// ResolveOffer transitions a pending offer to the given decision. The
// write is conditional on the offer still being pending, so two
// concurrent resolutions produce exactly one winner; the loser sees
// ErrConflict rather than silently overwriting.
func (s *Store) ResolveOffer(ctx context.Context, offerID string, decision models.OfferStatus) (*models.Offer, error) {
	decisionAV, err := attributevalue.Marshal(decision)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal decision: %w", err)
	}
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Offers),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: offerID}},
		UpdateExpression:    aws.String("SET #status = :decision, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":decision": decisionAV,
			":pending":  &types.AttributeValueMemberS{Value: string(models.OfferPending)},
			":now":      nowAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			// The condition fails for a missing offer as well as a lost
			// race; read back to tell the two apart.
			if _, getErr := s.GetOffer(ctx, offerID); getErr != nil {
				return nil, getErr
			}
			return nil, fmt.Errorf("offer %s already resolved: %w", offerID, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to resolve offer in DynamoDB: %w", err)
	}

	var offer models.Offer
	if err := attributevalue.UnmarshalMap(result.Attributes, &offer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resolved offer: %w", err)
	}

	return &offer, nil
}
