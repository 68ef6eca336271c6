package datasources

import (
	"context"
	"errors"

	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

// DefaultQueueName is the queue that job descriptors are seeded into for scoring.
const DefaultQueueName = "match-jobs"

// ErrMalformedTask is returned, together with true, by DequeueTask when an entry was
// removed from the queue but could not be decoded.
var ErrMalformedTask = errors.New("malformed task queue entry")

type TaskQueue interface {
	TaskEnqueuer
	TaskDequeuer
}

// TaskEnqueuer appends descriptors to the queue as a single batch: either all are
// enqueued or none are.
type TaskEnqueuer interface {
	EnqueueTasks(ctx context.Context, tasks []domain.JobDescriptor) error
}

// TaskDequeuer pops the oldest descriptor. It returns false when the queue is empty.
// Concurrent callers never receive the same entry.
type TaskDequeuer interface {
	DequeueTask(ctx context.Context) (domain.JobDescriptor, bool, error)
}
