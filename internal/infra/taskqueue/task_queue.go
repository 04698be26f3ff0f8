package taskqueue

import "context"

//go:generate mockgen -source=task_queue.go -destination=mock.go -package=taskqueue

// TaskQueue delivers alerts at their fire time. Deleting an unknown or already
// delivered task is not an error.
type TaskQueue interface {
	RegisterAlert(ctx context.Context, task *AlertTask) (*TaskResponse, error)
	DeleteTask(ctx context.Context, taskName string) error
}
