package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/campus-market/pkg/models"
	"github.com/chris/campus-market/pkg/storage"
	"github.com/chris/campus-market/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCompleteEscrow(t *testing.T) {
	tables := Tables{Escrow: "escrow", Products: "products"}

	approved := &models.EscrowTransaction{
		Id:        "escrow-1",
		OfferId:   "offer-1",
		ProductId: "prod-1",
		BuyerId:   "buyer-1",
		SellerId:  "seller-1",
		Amount:    400,
		Status:    models.EscrowAdminApproved,
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: tables}

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			// Settlement must touch both the escrow and the product.
			return len(input.TransactItems) == 2
		})).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		completed, err := store.CompleteEscrow(context.Background(), approved)

		assert.NoError(t, err)
		assert.Equal(t, models.EscrowCompleted, completed.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Completable", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: tables}

		cancelled := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("ConditionalCheckFailed")},
				{Code: aws.String("None")},
			},
		}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancelled)

		_, err := store.CompleteEscrow(context.Background(), approved)

		assert.ErrorIs(t, err, storage.ErrConflict)
		mockClient.AssertExpectations(t)
	})

	t.Run("Transaction Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: tables}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("transaction failed"))

		_, err := store.CompleteEscrow(context.Background(), approved)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute settlement transaction")
		mockClient.AssertExpectations(t)
	})
}
