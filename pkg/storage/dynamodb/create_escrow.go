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

// CreateEscrow creates a new held escrow transaction. The escrow table is
// keyed on offer_id, so the conditional put enforces at-most-one escrow
// per accepted offer; a concurrent duplicate returns ErrConflict.
func (s *Store) CreateEscrow(ctx context.Context, escrow *models.EscrowTransaction) (*models.EscrowTransaction, error) {
	now := time.Now()
	escrow.Id = uuid.New().String()
	escrow.Status = models.EscrowHeld
	escrow.CreatedAt = now
	escrow.UpdatedAt = now

	slog.Log(ctx, slog.LevelDebug, "creating escrow", "escrow", escrow)

	escrowAV, err := attributevalue.MarshalMap(escrow)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal escrow: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Escrow),
		Item:                escrowAV,
		ConditionExpression: aws.String("attribute_not_exists(offer_id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("escrow already exists for offer %s: %w", escrow.OfferId, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create escrow in DynamoDB: %w", err)
	}

	return escrow, nil
}
