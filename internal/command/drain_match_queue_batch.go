package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

// DefaultDrainBatchSize is the number of queue entries one batch invocation takes.
const DefaultDrainBatchSize = 100

// DrainScheduler arranges for one more batch of a drain chain to run later.
// It must not run the batch before returning.
type DrainScheduler interface {
	ScheduleDrain(ctx context.Context, chainID string) error
}

// DrainMatchQueueBatchRequest identifies the drain chain the batch belongs to.
// An empty ChainID starts a new chain.
type DrainMatchQueueBatchRequest struct {
	ChainID string
}

type DrainMatchQueueBatchResult struct {
	ChainID        string
	ProcessedCount int
	Rescheduled    bool
}

// DrainMatchQueueBatchConfig holds configuration for queue draining.
type DrainMatchQueueBatchConfig struct {
	// BatchSize is the most entries one invocation dequeues. A batch that fills up
	// schedules the next one; a batch that finds the queue empty ends the chain.
	BatchSize int
}

// DrainMatchQueueBatch processes one bounded batch of the task queue and schedules a
// continuation if the queue may still hold entries.
type DrainMatchQueueBatch struct {
	Dequeuer      datasources.TaskDequeuer
	Expander      Command[ExpandJobPairsRequest, ExpandJobPairsResult]
	Cancellations datasources.DrainChainCancellationChecker
	Scheduler     DrainScheduler
	Config        DrainMatchQueueBatchConfig
}

// NewDrainMatchQueueBatch creates a properly initialized DrainMatchQueueBatch command.
func NewDrainMatchQueueBatch(
	dequeuer datasources.TaskDequeuer,
	expander Command[ExpandJobPairsRequest, ExpandJobPairsResult],
	cancellations datasources.DrainChainCancellationChecker,
	scheduler DrainScheduler,
	config DrainMatchQueueBatchConfig,
) *DrainMatchQueueBatch {
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultDrainBatchSize
	}
	return &DrainMatchQueueBatch{
		Dequeuer:      dequeuer,
		Expander:      expander,
		Cancellations: cancellations,
		Scheduler:     scheduler,
		Config:        config,
	}
}

// Execute dequeues and expands up to BatchSize entries. Expansion failures and malformed
// entries count as processed. A dequeue failure ends the batch and is returned without
// scheduling a continuation.
func (c *DrainMatchQueueBatch) Execute(
	ctx context.Context, req DrainMatchQueueBatchRequest,
) (DrainMatchQueueBatchResult, error) {
	chainID := req.ChainID
	if chainID == "" {
		chainID = uuid.NewString()
	}
	logger := domain.LoggerFromContext(ctx).With("chain_id", chainID)
	ctx = domain.ContextWithLogger(ctx, logger)

	result := DrainMatchQueueBatchResult{ChainID: chainID}

	cancelled, err := c.Cancellations.IsDrainChainCancelled(ctx, chainID)
	if err != nil {
		return result, fmt.Errorf("checking chain cancellation: %w", err)
	}
	if cancelled {
		logger.InfoContext(ctx, "drain chain cancelled, not running batch")
		return result, nil
	}

	var successCount, failCount int
	for result.ProcessedCount < c.Config.BatchSize {
		task, ok, err := c.Dequeuer.DequeueTask(ctx)
		if errors.Is(err, datasources.ErrMalformedTask) && ok {
			logger.WarnContext(ctx, "skipping malformed queue entry", "error", err)
			result.ProcessedCount++
			failCount++
			continue
		}
		if err != nil {
			logger.ErrorContext(ctx, "drain batch ended early",
				"processed_count", result.ProcessedCount, "error", err)
			return result, fmt.Errorf("dequeueing task: %w", err)
		}
		if !ok {
			break
		}

		result.ProcessedCount++
		if _, err := c.Expander.Execute(ctx, ExpandJobPairsRequest{Job: task}); err != nil {
			logger.ErrorContext(ctx, "failed to expand job pairs",
				"job_id", task.JobID, "error", err)
			failCount++
			continue
		}
		successCount++
	}

	logger.InfoContext(ctx, "drain batch complete",
		"processed_count", result.ProcessedCount,
		"success_count", successCount,
		"fail_count", failCount)

	if result.ProcessedCount < c.Config.BatchSize {
		return result, nil
	}

	cancelled, err = c.Cancellations.IsDrainChainCancelled(ctx, chainID)
	if err != nil {
		return result, fmt.Errorf("checking chain cancellation: %w", err)
	}
	if cancelled {
		logger.InfoContext(ctx, "drain chain cancelled, not scheduling next batch")
		return result, nil
	}

	if err := c.Scheduler.ScheduleDrain(ctx, chainID); err != nil {
		return result, fmt.Errorf("scheduling next batch: %w", err)
	}
	result.Rescheduled = true

	return result, nil
}
