package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/campus-market/pkg/models"
	"github.com/chris/campus-market/pkg/storage"
)

const productOffersGSI = "product_id-created_at-index"

// GetOffer retrieves an offer from DynamoDB by its ID.
func (s *Store) GetOffer(ctx context.Context, offerID string) (*models.Offer, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": offerID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal offer ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Offers),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get offer from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("offer %s: %w", offerID, storage.ErrNotFound)
	}

	var offer models.Offer
	if err := attributevalue.UnmarshalMap(result.Item, &offer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal offer: %w", err)
	}

	return &offer, nil
}

// ListOffersByProduct retrieves offers for a product, newest first,
// optionally narrowed to a single buyer.
func (s *Store) ListOffersByProduct(ctx context.Context, productID, buyerID string) ([]models.Offer, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Offers),
		IndexName:              aws.String(productOffersGSI),
		KeyConditionExpression: aws.String("product_id = :productID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":productID": &types.AttributeValueMemberS{Value: productID},
		},
		ScanIndexForward: aws.Bool(false), // Sort by created_at in descending order
	}

	if buyerID != "" {
		input.FilterExpression = aws.String("buyer_id = :buyerID")
		input.ExpressionAttributeValues[":buyerID"] = &types.AttributeValueMemberS{Value: buyerID}
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query offers by product: %w", err)
	}

	var offers []models.Offer
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &offers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal offers: %w", err)
	}

	return offers, nil
}
