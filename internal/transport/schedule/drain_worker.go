// Package schedule runs matching work on in-process timers and worker loops.
package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/candidate-job-matching/internal/command"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

// DefaultDrainBacklog is how many drain chains may be waiting for their next batch at once.
const DefaultDrainBacklog = 16

var ErrDrainBacklogFull = errors.New("drain backlog full")

var _ command.DrainScheduler = (*DrainWorker)(nil)

// DrainWorker runs drain chain batches one at a time. Scheduling a drain queues a
// signal for the chain; the worker runs a batch per signal and checks for shutdown
// between batches, so a running batch is never interrupted by scheduling.
type DrainWorker struct {
	// Batch is set after construction, since the batch command schedules its
	// continuations through the worker.
	Batch   command.Command[command.DrainMatchQueueBatchRequest, command.DrainMatchQueueBatchResult]
	signals chan string
}

func NewDrainWorker(backlog int) *DrainWorker {
	if backlog <= 0 {
		backlog = DefaultDrainBacklog
	}
	return &DrainWorker{signals: make(chan string, backlog)}
}

// ScheduleDrain queues the next batch of a chain. It never blocks: a full backlog
// is reported as ErrDrainBacklogFull.
func (w *DrainWorker) ScheduleDrain(ctx context.Context, chainID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case w.signals <- chainID:
		return nil
	default:
		return fmt.Errorf("%w: chain [%s]", ErrDrainBacklogFull, chainID)
	}
}

// Run drains scheduled chains until ctx is cancelled.
func (w *DrainWorker) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "drain worker started")

	for {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "drain worker stopped")
			return nil
		case chainID := <-w.signals:
			if _, err := w.runBatch(ctx, chainID); err != nil {
				logger.ErrorContext(ctx, "drain batch failed", "chain_id", chainID, "error", err)
			}
		}
	}
}

// RunChain schedules a chain and runs batches until nothing further is scheduled,
// returning the number of batch invocations. It must not be used while Run is active.
func (w *DrainWorker) RunChain(ctx context.Context, chainID string) (int, error) {
	if err := w.ScheduleDrain(ctx, chainID); err != nil {
		return 0, err
	}
	return w.RunPending(ctx)
}

// RunPending runs batches for already scheduled chains until none remain, returning
// the number of batch invocations.
func (w *DrainWorker) RunPending(ctx context.Context) (int, error) {
	invocations := 0
	for {
		if err := ctx.Err(); err != nil {
			return invocations, err
		}

		var chainID string
		select {
		case chainID = <-w.signals:
		default:
			return invocations, nil
		}

		invocations++
		if _, err := w.runBatch(ctx, chainID); err != nil {
			return invocations, err
		}
	}
}

func (w *DrainWorker) runBatch(ctx context.Context, chainID string) (command.DrainMatchQueueBatchResult, error) {
	result, err := w.Batch.Execute(ctx, command.DrainMatchQueueBatchRequest{ChainID: chainID})
	if err != nil {
		return result, fmt.Errorf("running drain batch: %w", err)
	}
	return result, nil
}
