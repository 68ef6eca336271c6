package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

type RebuildMatchQueueRequest struct{}

type RebuildMatchQueueResult struct {
	JobsEnqueued int
	ChainID      string
}

// RebuildMatchQueue is the daily entry point: it seeds the queue from active jobs
// and starts a drain chain without waiting for it.
type RebuildMatchQueue struct {
	Builder   Command[BuildMatchQueueRequest, BuildMatchQueueResult]
	Scheduler DrainScheduler
}

// NewRebuildMatchQueue creates a properly initialized RebuildMatchQueue command.
func NewRebuildMatchQueue(
	builder Command[BuildMatchQueueRequest, BuildMatchQueueResult],
	scheduler DrainScheduler,
) *RebuildMatchQueue {
	return &RebuildMatchQueue{
		Builder:   builder,
		Scheduler: scheduler,
	}
}

// Execute builds the queue and schedules the first drain batch. If the build fails,
// no drain is scheduled.
func (c *RebuildMatchQueue) Execute(ctx context.Context, _ RebuildMatchQueueRequest) (RebuildMatchQueueResult, error) {
	logger := domain.LoggerFromContext(ctx)

	built, err := c.Builder.Execute(ctx, BuildMatchQueueRequest{})
	if err != nil {
		return RebuildMatchQueueResult{}, fmt.Errorf("building match queue: %w", err)
	}

	chainID := uuid.NewString()
	if err := c.Scheduler.ScheduleDrain(ctx, chainID); err != nil {
		return RebuildMatchQueueResult{JobsEnqueued: built.Count},
			fmt.Errorf("scheduling queue drain: %w", err)
	}

	logger.InfoContext(ctx, "match queue rebuilt",
		"jobs_enqueued", built.Count, "chain_id", chainID)

	return RebuildMatchQueueResult{JobsEnqueued: built.Count, ChainID: chainID}, nil
}
