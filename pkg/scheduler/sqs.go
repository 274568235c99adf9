package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/campus-market/pkg/api"
)

// SQSScheduler implements the ReminderScheduler interface using AWS SQS.
type SQSScheduler struct {
	Client   *sqs.Client
	QueueURL string
}

// NewSQSScheduler creates a new SQSScheduler.
func NewSQSScheduler(client *sqs.Client, queueURL string) *SQSScheduler {
	return &SQSScheduler{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ ReminderScheduler = (*SQSScheduler)(nil)

// ScheduleEscrowReminder sends the escrow to an SQS queue with the given
// delivery delay. Delivery is at-least-once; the consumer re-checks the
// escrow's status before acting.
func (s *SQSScheduler) ScheduleEscrowReminder(ctx context.Context, escrow *api.Escrow, delay time.Duration) error {
	body, err := json.Marshal(escrow)
	if err != nil {
		return fmt.Errorf("failed to marshal escrow for SQS: %w", err)
	}

	_, err = s.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:     aws.String(s.QueueURL),
		MessageBody:  aws.String(string(body)),
		DelaySeconds: int32(delay / time.Second),
	})

	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}
