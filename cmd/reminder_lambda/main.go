package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/campus-market/pkg/api"
	"github.com/chris/campus-market/pkg/models"
	"github.com/chris/campus-market/pkg/notifications"
	"github.com/chris/campus-market/pkg/storage"
	dydbstore "github.com/chris/campus-market/pkg/storage/dynamodb"
	"github.com/chris/campus-market/pkg/websockets"
	"github.com/joho/godotenv"
)

var store storage.Storage
var notifier notifications.Notifier

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	tables := dydbstore.Tables{
		Products:             os.Getenv("DYNAMODB_PRODUCTS_TABLE_NAME"),
		Offers:               os.Getenv("DYNAMODB_OFFERS_TABLE_NAME"),
		Swaps:                os.Getenv("DYNAMODB_SWAPS_TABLE_NAME"),
		Escrow:               os.Getenv("DYNAMODB_ESCROW_TABLE_NAME"),
		Chats:                os.Getenv("DYNAMODB_CHATS_TABLE_NAME"),
		Messages:             os.Getenv("DYNAMODB_MESSAGES_TABLE_NAME"),
		WebsocketConnections: os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME"),
	}
	if tables.Escrow == "" || tables.Chats == "" || tables.Messages == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}
	ddbStore := dydbstore.New(dbClient, tables)
	store = ddbStore

	var publisher websockets.Publisher = &websockets.NoOpPublisher{}
	if endpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); endpoint != "" {
		publisher, err = websockets.NewPublisher(ddbStore, ddbStore, endpoint)
		if err != nil {
			log.Fatalf("failed to create websocket publisher: %v", err)
		}
	}
	notifier = notifications.NewDispatcher(ddbStore, publisher)
}

// HandleRequest processes reminder messages for escrows still awaiting an
// admin decision. Delivery is at-least-once, so the current status is
// re-read before anything is appended to the conversation.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var escrow api.Escrow
		if err := json.Unmarshal([]byte(message.Body), &escrow); err != nil {
			log.Printf("ERROR: failed to unmarshal escrow from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		current, err := store.GetEscrow(ctx, escrow.Id)
		if err != nil {
			log.Printf("ERROR: failed to load escrow %s: %v", escrow.Id, err)
			return err
		}

		// A decision already landed; the reminder is stale.
		if current.Status != models.EscrowHeld {
			log.Printf("Escrow %s is %s, skipping reminder", current.Id, current.Status)
			continue
		}

		chat, err := store.ResolveOrCreateChat(ctx, &models.Chat{
			ProductId: current.ProductId,
			BuyerId:   current.BuyerId,
			SellerId:  current.SellerId,
		})
		if err != nil {
			log.Printf("ERROR: failed to resolve chat for escrow %s: %v", current.Id, err)
			return err
		}

		if _, err := notifier.Notify(ctx, notifications.Event{
			Kind:    notifications.EventEscrowReminder,
			ChatID:  chat.Id,
			ActorID: current.BuyerId,
			Amount:  current.Amount,
		}); err != nil {
			log.Printf("ERROR: failed to append reminder for escrow %s: %v", current.Id, err)
			return err
		}

		log.Printf("Appended reminder for escrow %s", current.Id)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
