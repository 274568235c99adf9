package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/campus-market/pkg/models"
	"github.com/chris/campus-market/pkg/storage"
	"github.com/chris/campus-market/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDecideEscrow(t *testing.T) {
	tables := Tables{Escrow: "escrow"}

	held := &models.EscrowTransaction{
		Id:      "escrow-1",
		OfferId: "offer-1",
		Status:  models.EscrowHeld,
	}

	t.Run("Approve", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: tables}

		heldAV, _ := attributevalue.MarshalMap(held)
		mockClient.On("Query", mock.Anything, mock.Anything).Once().Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{heldAV}}, nil)

		approved := *held
		approved.Status = models.EscrowAdminApproved
		approvedAV, _ := attributevalue.MarshalMap(&approved)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.UpdateItemOutput{Attributes: approvedAV}, nil)

		result, err := store.DecideEscrow(context.Background(), "escrow-1", models.EscrowAdminApproved)

		assert.NoError(t, err)
		assert.Equal(t, models.EscrowAdminApproved, result.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Decided", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: tables}

		heldAV, _ := attributevalue.MarshalMap(held)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{heldAV}}, nil)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		_, err := store.DecideEscrow(context.Background(), "escrow-1", models.EscrowRejected)

		assert.ErrorIs(t, err, storage.ErrConflict)
		mockClient.AssertExpectations(t)
	})

	t.Run("Escrow Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: tables}

		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{Items: nil}, nil)

		_, err := store.DecideEscrow(context.Background(), "missing", models.EscrowAdminApproved)

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})
}

func TestListEscrowsByStatus(t *testing.T) {
	tables := Tables{Escrow: "escrow"}

	t.Run("Empty Status Scans", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: tables}

		mockClient.On("Scan", mock.Anything, mock.Anything).Once().Return(&dynamodb.ScanOutput{}, nil)

		escrows, err := store.ListEscrowsByStatus(context.Background(), "")

		assert.NoError(t, err)
		assert.Empty(t, escrows)
		mockClient.AssertExpectations(t)
	})

	t.Run("Status Queries Index", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: tables}

		heldAV, _ := attributevalue.MarshalMap(&models.EscrowTransaction{Id: "escrow-1", Status: models.EscrowHeld})
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return *input.IndexName == escrowStatusGSI
		})).Once().Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{heldAV}}, nil)

		escrows, err := store.ListEscrowsByStatus(context.Background(), models.EscrowHeld)

		assert.NoError(t, err)
		assert.Len(t, escrows, 1)
		mockClient.AssertExpectations(t)
	})
}

func TestGetStuckEscrows(t *testing.T) {
	tables := Tables{Escrow: "escrow"}

	t.Run("Queries Held With Cutoff", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: tables}

		stuckAV, _ := attributevalue.MarshalMap(&models.EscrowTransaction{Id: "escrow-1", Status: models.EscrowHeld})
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return input.FilterExpression != nil && *input.FilterExpression == "created_at < :cutoff"
		})).Once().Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{stuckAV}}, nil)

		escrows, err := store.GetStuckEscrows(context.Background(), 30*time.Minute)

		assert.NoError(t, err)
		assert.Len(t, escrows, 1)
		mockClient.AssertExpectations(t)
	})
}

func TestGetEscrowByOffer(t *testing.T) {
	tables := Tables{Escrow: "escrow"}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: tables}

		heldAV, _ := attributevalue.MarshalMap(&models.EscrowTransaction{Id: "escrow-1", OfferId: "offer-1", Status: models.EscrowHeld})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: heldAV}, nil)

		escrow, err := store.GetEscrowByOffer(context.Background(), "offer-1")

		assert.NoError(t, err)
		assert.Equal(t, "escrow-1", escrow.Id)
		mockClient.AssertExpectations(t)
	})

	t.Run("No Escrow For Offer", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: tables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{}, nil)

		_, err := store.GetEscrowByOffer(context.Background(), "offer-1")

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})
}
