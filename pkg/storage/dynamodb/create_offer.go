package dynamodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/campus-market/pkg/models"
	"github.com/chris/campus-market/pkg/storage"
	"github.com/google/uuid"
)

// CreateOffer validates the offer against the listing's terms and creates
// a new pending offer record. Multiple offers per (product, buyer) may
// coexist; a rejected offer never blocks a fresh one.
func (s *Store) CreateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	// 1. Validate against the listing's current terms.
	product, err := s.GetProduct(ctx, offer.ProductId)
	if err != nil {
		return nil, err
	}
	if product.Status != models.ACTIVE {
		return nil, storage.ErrListingNotActive
	}
	if product.TransactionType != models.CASH && product.TransactionType != models.BOTH {
		return nil, storage.ErrIncompatibleListing
	}
	if offer.BuyerId == product.SellerId {
		return nil, storage.ErrOwnListing
	}
	if offer.OfferAmount <= 0 {
		return nil, storage.ErrNonPositiveAmount
	}

	// 2. Complete the offer object with server-side details.
	now := time.Now()
	offer.Id = uuid.New().String()
	offer.Status = models.OfferPending
	offer.CreatedAt = now
	offer.UpdatedAt = now

	slog.Log(ctx, slog.LevelDebug, "creating offer", "offer", offer)

	offerAV, err := attributevalue.MarshalMap(offer)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal offer: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Offers),
		Item:                offerAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create offer in DynamoDB: %w", err)
	}

	return offer, nil
}
