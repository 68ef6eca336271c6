package command

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	cmdmocks "github.com/jbeshir/candidate-job-matching/internal/command/mocks"
	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/datasources/memory"
	"github.com/jbeshir/candidate-job-matching/internal/datasources/mocks"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingScheduler collects scheduled chain IDs so tests can drive the chain themselves.
type recordingScheduler struct {
	scheduled []string
	err       error
}

func (s *recordingScheduler) ScheduleDrain(_ context.Context, chainID string) error {
	if s.err != nil {
		return s.err
	}
	s.scheduled = append(s.scheduled, chainID)
	return nil
}

func seedQueue(t *testing.T, n int) *memory.Queue {
	t.Helper()
	queue := memory.NewQueue()
	tasks := make([]domain.JobDescriptor, n)
	for i := range tasks {
		tasks[i] = domain.JobDescriptor{JobID: fmt.Sprintf("job-%d", i), EmployerID: "emp1"}
	}
	require.NoError(t, queue.EnqueueTasks(context.Background(), tasks))
	return queue
}

func TestDrainMatchQueueBatch_ChainTerminates(t *testing.T) {
	cases := []struct {
		name            string
		entries         int
		wantInvocations int
	}{
		{name: "empty_queue", entries: 0, wantInvocations: 1},
		{name: "partial_batch", entries: 7, wantInvocations: 1},
		{name: "exactly_one_batch", entries: 100, wantInvocations: 2},
		{name: "three_batches_and_remainder", entries: 3*100 + 7, wantInvocations: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			queue := seedQueue(t, tc.entries)
			expander := cmdmocks.NewMockCommand[ExpandJobPairsRequest, ExpandJobPairsResult](t)
			if tc.entries > 0 {
				expander.EXPECT().Execute(mock.Anything, mock.Anything).Return(ExpandJobPairsResult{}, nil)
			}
			scheduler := &recordingScheduler{}

			cmd := NewDrainMatchQueueBatch(queue, expander, memory.NewCancellations(), scheduler,
				DrainMatchQueueBatchConfig{BatchSize: 100})

			invocations := 0
			processed := 0
			req := DrainMatchQueueBatchRequest{ChainID: "chain1"}
			for {
				invocations++
				require.LessOrEqual(t, invocations, tc.wantInvocations, "chain did not terminate")

				result, err := cmd.Execute(testCtx(), req)
				require.NoError(t, err)
				processed += result.ProcessedCount

				if !result.Rescheduled {
					break
				}
				require.Len(t, scheduler.scheduled, invocations)
				req = DrainMatchQueueBatchRequest{ChainID: scheduler.scheduled[invocations-1]}
			}

			assert.Equal(t, tc.wantInvocations, invocations)
			assert.Equal(t, tc.entries, processed)
			assert.Equal(t, 0, queue.Len())
			for _, chainID := range scheduler.scheduled {
				assert.Equal(t, "chain1", chainID)
			}
		})
	}
}

func TestDrainMatchQueueBatch_PartialFailureIsolation(t *testing.T) {
	profiles := memory.NewProfileStore()
	profiles.PutCandidate(domain.Candidate{ID: "cand1", OptedIn: true, Embedding: []float32{1, 1, 0}})
	for i := range 10 {
		profiles.PutJob(domain.JobPosting{
			ID:        fmt.Sprintf("job-%d", i),
			Active:    true,
			Embedding: []float32{1, 0, 0},
		})
	}
	queue := memory.NewQueue()
	scores := memory.NewScoreStore()

	judge := mocks.NewMockSuitabilityJudge(t)
	judge.EXPECT().JudgeSuitability(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req domain.JudgmentRequest) (domain.Judgment, error) {
			if req.Job.ID == "job-4" {
				<-ctx.Done()
				return domain.Judgment{}, ctx.Err()
			}
			return domain.Judgment{Score: 70}, nil
		})

	evaluate := newTestEvaluatePair(profiles, datasources.NullEmbedder{}, judge, scores, 20*time.Millisecond)
	expand := NewExpandJobPairs(NewOptedInCandidateSelector(profiles), evaluate, ExpandJobPairsConfig{
		Combos:      []domain.Combo{domain.ComboSkills},
		Concurrency: 1,
	})
	scheduler := &recordingScheduler{}

	_, err := NewBuildMatchQueue(profiles, queue).Execute(testCtx(), BuildMatchQueueRequest{})
	require.NoError(t, err)

	cmd := NewDrainMatchQueueBatch(queue, expand, memory.NewCancellations(), scheduler,
		DrainMatchQueueBatchConfig{BatchSize: 100})
	result, err := cmd.Execute(testCtx(), DrainMatchQueueBatchRequest{ChainID: "chain1"})

	require.NoError(t, err)
	assert.Equal(t, 10, result.ProcessedCount)
	assert.False(t, result.Rescheduled)
	assert.Equal(t, 9, scores.Len())
	_, ok := scores.Get("cand1", "job-4", domain.ComboSkills)
	assert.False(t, ok)
	_, ok = scores.Get("cand1", "job-5", domain.ComboSkills)
	assert.True(t, ok)
}

func TestDrainMatchQueueBatch_ExpansionFailureCountsAsProcessed(t *testing.T) {
	queue := seedQueue(t, 3)
	expander := cmdmocks.NewMockCommand[ExpandJobPairsRequest, ExpandJobPairsResult](t)
	expander.EXPECT().
		Execute(mock.Anything, ExpandJobPairsRequest{Job: domain.JobDescriptor{JobID: "job-1", EmployerID: "emp1"}}).
		Return(ExpandJobPairsResult{}, errors.New("selector failed"))
	expander.EXPECT().Execute(mock.Anything, mock.Anything).Return(ExpandJobPairsResult{Submitted: 3}, nil)

	cmd := NewDrainMatchQueueBatch(queue, expander, memory.NewCancellations(), &recordingScheduler{},
		DrainMatchQueueBatchConfig{BatchSize: 100})
	result, err := cmd.Execute(testCtx(), DrainMatchQueueBatchRequest{ChainID: "chain1"})

	require.NoError(t, err)
	assert.Equal(t, 3, result.ProcessedCount)
}

func TestDrainMatchQueueBatch_MalformedEntrySkipped(t *testing.T) {
	dequeuer := mocks.NewMockTaskDequeuer(t)
	dequeuer.EXPECT().DequeueTask(mock.Anything).
		Return(domain.JobDescriptor{}, true, datasources.ErrMalformedTask).Once()
	dequeuer.EXPECT().DequeueTask(mock.Anything).
		Return(domain.JobDescriptor{JobID: "job1"}, true, nil).Once()
	dequeuer.EXPECT().DequeueTask(mock.Anything).
		Return(domain.JobDescriptor{}, false, nil).Once()

	expander := cmdmocks.NewMockCommand[ExpandJobPairsRequest, ExpandJobPairsResult](t)
	expander.EXPECT().Execute(mock.Anything, ExpandJobPairsRequest{Job: domain.JobDescriptor{JobID: "job1"}}).
		Return(ExpandJobPairsResult{}, nil)

	cmd := NewDrainMatchQueueBatch(dequeuer, expander, memory.NewCancellations(), &recordingScheduler{},
		DrainMatchQueueBatchConfig{BatchSize: 100})
	result, err := cmd.Execute(testCtx(), DrainMatchQueueBatchRequest{ChainID: "chain1"})

	require.NoError(t, err)
	assert.Equal(t, 2, result.ProcessedCount)
}

func TestDrainMatchQueueBatch_DequeueFailureEndsBatch(t *testing.T) {
	dequeuer := mocks.NewMockTaskDequeuer(t)
	dequeuer.EXPECT().DequeueTask(mock.Anything).
		Return(domain.JobDescriptor{JobID: "job1"}, true, nil).Once()
	dequeuer.EXPECT().DequeueTask(mock.Anything).
		Return(domain.JobDescriptor{}, false, errors.New("lock wait timeout")).Once()

	expander := cmdmocks.NewMockCommand[ExpandJobPairsRequest, ExpandJobPairsResult](t)
	expander.EXPECT().Execute(mock.Anything, mock.Anything).Return(ExpandJobPairsResult{}, nil)
	scheduler := &recordingScheduler{}

	cmd := NewDrainMatchQueueBatch(dequeuer, expander, memory.NewCancellations(), scheduler,
		DrainMatchQueueBatchConfig{BatchSize: 2})
	result, err := cmd.Execute(testCtx(), DrainMatchQueueBatchRequest{ChainID: "chain1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dequeueing task")
	assert.Equal(t, 1, result.ProcessedCount)
	assert.False(t, result.Rescheduled)
	assert.Empty(t, scheduler.scheduled)
}

func TestDrainMatchQueueBatch_Cancellation(t *testing.T) {
	t.Run("cancelled_before_batch", func(t *testing.T) {
		queue := seedQueue(t, 5)
		cancellations := memory.NewCancellations()
		require.NoError(t, cancellations.CancelDrainChain(context.Background(), "chain1"))
		expander := cmdmocks.NewMockCommand[ExpandJobPairsRequest, ExpandJobPairsResult](t)

		cmd := NewDrainMatchQueueBatch(queue, expander, cancellations, &recordingScheduler{},
			DrainMatchQueueBatchConfig{BatchSize: 2})
		result, err := cmd.Execute(testCtx(), DrainMatchQueueBatchRequest{ChainID: "chain1"})

		require.NoError(t, err)
		assert.Equal(t, 0, result.ProcessedCount)
		assert.Equal(t, 5, queue.Len())
	})

	t.Run("cancelled_during_batch_not_rescheduled", func(t *testing.T) {
		queue := seedQueue(t, 5)
		checker := mocks.NewMockDrainChainCancellationChecker(t)
		checker.EXPECT().IsDrainChainCancelled(mock.Anything, "chain1").Return(false, nil).Once()
		checker.EXPECT().IsDrainChainCancelled(mock.Anything, "chain1").Return(true, nil).Once()
		expander := cmdmocks.NewMockCommand[ExpandJobPairsRequest, ExpandJobPairsResult](t)
		expander.EXPECT().Execute(mock.Anything, mock.Anything).Return(ExpandJobPairsResult{}, nil)
		scheduler := &recordingScheduler{}

		cmd := NewDrainMatchQueueBatch(queue, expander, checker, scheduler,
			DrainMatchQueueBatchConfig{BatchSize: 2})
		result, err := cmd.Execute(testCtx(), DrainMatchQueueBatchRequest{ChainID: "chain1"})

		require.NoError(t, err)
		assert.Equal(t, 2, result.ProcessedCount)
		assert.False(t, result.Rescheduled)
		assert.Empty(t, scheduler.scheduled)
		assert.Equal(t, 3, queue.Len())
	})
}

func TestDrainMatchQueueBatch_SchedulingFailure(t *testing.T) {
	queue := seedQueue(t, 2)
	expander := cmdmocks.NewMockCommand[ExpandJobPairsRequest, ExpandJobPairsResult](t)
	expander.EXPECT().Execute(mock.Anything, mock.Anything).Return(ExpandJobPairsResult{}, nil)

	cmd := NewDrainMatchQueueBatch(queue, expander, memory.NewCancellations(),
		&recordingScheduler{err: errors.New("broker closed")},
		DrainMatchQueueBatchConfig{BatchSize: 2})
	result, err := cmd.Execute(testCtx(), DrainMatchQueueBatchRequest{ChainID: "chain1"})

	require.Error(t, err)
	assert.Equal(t, 2, result.ProcessedCount)
	assert.False(t, result.Rescheduled)
}

func TestDrainMatchQueueBatch_AssignsChainID(t *testing.T) {
	queue := seedQueue(t, 2)
	expander := cmdmocks.NewMockCommand[ExpandJobPairsRequest, ExpandJobPairsResult](t)
	expander.EXPECT().Execute(mock.Anything, mock.Anything).Return(ExpandJobPairsResult{}, nil)
	scheduler := &recordingScheduler{}

	cmd := NewDrainMatchQueueBatch(queue, expander, memory.NewCancellations(), scheduler,
		DrainMatchQueueBatchConfig{BatchSize: 2})
	result, err := cmd.Execute(testCtx(), DrainMatchQueueBatchRequest{})

	require.NoError(t, err)
	require.NotEmpty(t, result.ChainID)
	assert.Equal(t, []string{result.ChainID}, scheduler.scheduled)
}
