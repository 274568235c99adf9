package scheduler

import (
	"context"
	"time"

	"github.com/chris/campus-market/pkg/api"
)

// ReminderScheduler defines the interface for a component that schedules
// a follow-up reminder for an escrow awaiting admin review.
type ReminderScheduler interface {
	// ScheduleEscrowReminder enqueues an escrow for a delayed reminder.
	ScheduleEscrowReminder(ctx context.Context, escrow *api.Escrow, delay time.Duration) error
}
