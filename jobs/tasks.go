package jobs

import (
	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskPendingCoachReminder scans for coach signups still awaiting
	// admin promotion.
	TaskPendingCoachReminder = "club:pending_coach_reminder"
	// TaskSessionSweep removes auth session rows past their expiry.
	TaskSessionSweep = "club:session_sweep"
)

// NewPendingCoachReminderTask constructs the reminder task. The payload is
// empty; the handler reads the configured club ID.
func NewPendingCoachReminderTask() *asynq.Task {
	return asynq.NewTask(TaskPendingCoachReminder, nil)
}

// NewSessionSweepTask constructs the sweep task.
func NewSessionSweepTask() *asynq.Task {
	return asynq.NewTask(TaskSessionSweep, nil)
}
