package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/campus-market/pkg/mapping"
	"github.com/chris/campus-market/pkg/scheduler"
	"github.com/chris/campus-market/pkg/storage"
	dydbstore "github.com/chris/campus-market/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var store storage.Storage
var sqsScheduler scheduler.ReminderScheduler

const stuckEscrowThreshold = 30 * time.Minute

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	sqsClient := sqs.NewFromConfig(cfg)

	// Initialize dependencies.
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	sqsScheduler = scheduler.NewSQSScheduler(sqsClient, sqsQueueURL)

	store = dydbstore.New(dbClient, dydbstore.Tables{
		Products:             os.Getenv("DYNAMODB_PRODUCTS_TABLE_NAME"),
		Offers:               os.Getenv("DYNAMODB_OFFERS_TABLE_NAME"),
		Swaps:                os.Getenv("DYNAMODB_SWAPS_TABLE_NAME"),
		Escrow:               os.Getenv("DYNAMODB_ESCROW_TABLE_NAME"),
		Chats:                os.Getenv("DYNAMODB_CHATS_TABLE_NAME"),
		Messages:             os.Getenv("DYNAMODB_MESSAGES_TABLE_NAME"),
		WebsocketConnections: os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME"),
	})
}

// HandleRequest is triggered by an EventBridge Schedule. It re-enqueues a
// reminder for every escrow that has been waiting on an admin decision
// for longer than the threshold.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting reconciliation process for stuck escrows...")

	stuckEscrows, err := store.GetStuckEscrows(ctx, stuckEscrowThreshold)
	if err != nil {
		log.Printf("ERROR: failed to get stuck escrows: %v", err)
		return err
	}

	if len(stuckEscrows) == 0 {
		log.Println("No stuck escrows found.")
		return nil
	}

	log.Printf("Found %d stuck escrows. Re-enqueuing reminders...", len(stuckEscrows))

	for _, escrow := range stuckEscrows {
		apiEscrow := mapping.ToApiEscrow(&escrow)
		if err := sqsScheduler.ScheduleEscrowReminder(ctx, apiEscrow, 0); err != nil {
			log.Printf("ERROR: failed to re-enqueue escrow %s: %v", escrow.Id, err)
			// Continue to the next escrow, don't let one failure stop the whole batch.
			continue
		}
		log.Printf("Successfully re-enqueued escrow %s", escrow.Id)
	}

	log.Println("Reconciliation process finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
