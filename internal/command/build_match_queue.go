package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

// ErrBuildFailed is returned when the active job postings could not be read.
var ErrBuildFailed = errors.New("failed to build match queue")

type BuildMatchQueueRequest struct{}

// BuildMatchQueueResult lists the descriptors that were enqueued.
type BuildMatchQueueResult struct {
	Count int
	Jobs  []domain.JobDescriptor
}

// BuildMatchQueue seeds the task queue with one descriptor per active job posting.
type BuildMatchQueue struct {
	JobLister datasources.ActiveJobLister
	Enqueuer  datasources.TaskEnqueuer
}

// NewBuildMatchQueue creates a properly initialized BuildMatchQueue command.
func NewBuildMatchQueue(
	jobLister datasources.ActiveJobLister,
	enqueuer datasources.TaskEnqueuer,
) *BuildMatchQueue {
	return &BuildMatchQueue{
		JobLister: jobLister,
		Enqueuer:  enqueuer,
	}
}

// Execute reads every active job and appends all of their descriptors to the queue in one call.
// Nothing is enqueued if the read fails.
func (c *BuildMatchQueue) Execute(ctx context.Context, _ BuildMatchQueueRequest) (BuildMatchQueueResult, error) {
	logger := domain.LoggerFromContext(ctx)

	jobs, err := c.JobLister.ListActiveJobDescriptors(ctx)
	if err != nil {
		return BuildMatchQueueResult{}, fmt.Errorf("%w: listing active jobs: %w", ErrBuildFailed, err)
	}

	if len(jobs) == 0 {
		logger.InfoContext(ctx, "no active jobs to enqueue")
		return BuildMatchQueueResult{Jobs: []domain.JobDescriptor{}}, nil
	}

	if err := c.Enqueuer.EnqueueTasks(ctx, jobs); err != nil {
		return BuildMatchQueueResult{}, fmt.Errorf("enqueueing active jobs: %w", err)
	}

	logger.InfoContext(ctx, "match queue built", "count", len(jobs))

	return BuildMatchQueueResult{Count: len(jobs), Jobs: jobs}, nil
}
