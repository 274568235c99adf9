package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/campus-market/pkg/models"
	"github.com/chris/campus-market/pkg/storage"
	"github.com/chris/campus-market/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateEscrow(t *testing.T) {
	tables := Tables{Escrow: "escrow"}

	escrow := func() *models.EscrowTransaction {
		return &models.EscrowTransaction{
			OfferId:         "offer-1",
			ProductId:       "prod-1",
			BuyerId:         "buyer-1",
			SellerId:        "seller-1",
			Amount:          400,
			TransactionType: models.CASH,
		}
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: tables}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.PutItemOutput{}, nil)

		created, err := store.CreateEscrow(context.Background(), escrow())

		assert.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, models.EscrowHeld, created.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Duplicate Escrow For Offer", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: tables}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		_, err := store.CreateEscrow(context.Background(), escrow())

		assert.ErrorIs(t, err, storage.ErrConflict)
		mockClient.AssertExpectations(t)
	})

	t.Run("Put Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: tables}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("put failed"))

		_, err := store.CreateEscrow(context.Background(), escrow())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create escrow")
		mockClient.AssertExpectations(t)
	})
}
