package tasks

import (
	"context"

	"github.com/hibiken/asynq"
)

// TypeAvailabilityPrecompute refreshes the per-category next-available-day cache.
const TypeAvailabilityPrecompute = "availability:precompute"

// NewPrecomputeTask builds the precompute task. The payload is empty: the
// worker always recomputes every category from current data.
func NewPrecomputeTask() *asynq.Task {
	return asynq.NewTask(TypeAvailabilityPrecompute, nil)
}

// Enqueuer submits precompute tasks to the queue.
type Enqueuer struct {
	Client *asynq.Client
}

// EnqueuePrecompute schedules one precompute run. Duplicate pending runs are
// collapsed by task ID so a burst of bookings enqueues a single refresh.
func (e *Enqueuer) EnqueuePrecompute(ctx context.Context) error {
	_, err := e.Client.EnqueueContext(ctx, NewPrecomputeTask(), asynq.TaskID(TypeAvailabilityPrecompute))
	if err != nil && err != asynq.ErrTaskIDConflict {
		return err
	}
	return nil
}
