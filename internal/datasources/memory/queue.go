// Package memory holds in-process datasources for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

var _ datasources.TaskQueue = (*Queue)(nil)

// Queue is a FIFO task queue held in memory.
type Queue struct {
	mu      sync.Mutex
	entries []domain.JobDescriptor
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) EnqueueTasks(_ context.Context, tasks []domain.JobDescriptor) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries = append(q.entries, tasks...)
	return nil
}

func (q *Queue) DequeueTask(_ context.Context) (domain.JobDescriptor, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.entries) == 0 {
		return domain.JobDescriptor{}, false, nil
	}

	task := q.entries[0]
	q.entries[0] = domain.JobDescriptor{}
	q.entries = q.entries[1:]
	if task.JobID == "" {
		return domain.JobDescriptor{}, true, fmt.Errorf("%w: missing jd_id", datasources.ErrMalformedTask)
	}
	return task, true, nil
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.entries)
}
