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

const sellerProductsGSI = "seller_id-index"

// GetProduct retrieves a product listing from DynamoDB by its ID.
func (s *Store) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": productID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal product ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Products),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get product from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("product %s: %w", productID, storage.ErrNotFound)
	}

	var product models.Product
	if err := attributevalue.UnmarshalMap(result.Item, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}

	return &product, nil
}

// ListActiveProductsBySeller retrieves a seller's active listings.
func (s *Store) ListActiveProductsBySeller(ctx context.Context, sellerID string) ([]models.Product, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Products),
		IndexName:              aws.String(sellerProductsGSI),
		KeyConditionExpression: aws.String("seller_id = :sellerID"),
		FilterExpression:       aws.String("#status = :active"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sellerID": &types.AttributeValueMemberS{Value: sellerID},
			":active":   &types.AttributeValueMemberS{Value: string(models.ACTIVE)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by seller: %w", err)
	}

	var products []models.Product
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal products: %w", err)
	}

	return products, nil
}
