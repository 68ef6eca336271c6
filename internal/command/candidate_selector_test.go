package command

import (
	"context"
	"errors"
	"testing"
	"time"

	cmdmocks "github.com/jbeshir/candidate-job-matching/internal/command/mocks"
	"github.com/jbeshir/candidate-job-matching/internal/datasources/memory"
	"github.com/jbeshir/candidate-job-matching/internal/datasources/mocks"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOptedInCandidateSelector(t *testing.T) {
	lister := mocks.NewMockOptedInCandidateLister(t)
	lister.EXPECT().ListOptedInCandidateIDs(mock.Anything).Return([]string{"c1", "c2"}, nil)

	ids, err := NewOptedInCandidateSelector(lister).SelectCandidates(testCtx(), domain.JobDescriptor{JobID: "job1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, ids)
}

func TestOptedInCandidateSelector_Error(t *testing.T) {
	lister := mocks.NewMockOptedInCandidateLister(t)
	lister.EXPECT().ListOptedInCandidateIDs(mock.Anything).Return(nil, errors.New("timeout"))

	_, err := NewOptedInCandidateSelector(lister).SelectCandidates(testCtx(), domain.JobDescriptor{JobID: "job1"})
	require.Error(t, err)
}

func TestProximityCandidateSelector(t *testing.T) {
	config := ProximityCandidateSelectorConfig{MinSimilarity: 0.4, Limit: 50}
	stored := []float32{0.1, 0.2, 0.3}
	embedded := []float32{0.3, 0.2, 0.1}

	cases := []struct {
		name        string
		job         domain.JobPosting
		jobErr      error
		embedErr    error
		wantEmbed   bool
		wantVector  []float32
		nearby      []domain.CandidateProximity
		nearbyErr   error
		wantIDs     []string
		wantErr     bool
		errContains string
	}{
		{
			name:       "uses_stored_embedding",
			job:        domain.JobPosting{ID: "job1", Embedding: stored},
			wantVector: stored,
			nearby: []domain.CandidateProximity{
				{CandidateID: "c1", Score: 0.9},
				{CandidateID: "c2", Score: 0.5},
			},
			wantIDs: []string{"c1", "c2"},
		},
		{
			name:       "embeds_job_without_embedding",
			job:        domain.JobPosting{ID: "job1", Title: "Go engineer"},
			wantEmbed:  true,
			wantVector: embedded,
			nearby:     []domain.CandidateProximity{},
			wantIDs:    []string{},
		},
		{
			name:        "job_lookup_failure",
			job:         domain.JobPosting{},
			jobErr:      domain.ErrNotFound,
			wantErr:     true,
			errContains: "getting job",
		},
		{
			name:        "embedding_failure",
			job:         domain.JobPosting{ID: "job1", Title: "Go engineer"},
			wantEmbed:   true,
			embedErr:    errors.New("rate limited"),
			wantErr:     true,
			errContains: "embedding job",
		},
		{
			name:        "index_failure",
			job:         domain.JobPosting{ID: "job1", Embedding: stored},
			wantVector:  stored,
			nearbyErr:   errors.New("index unavailable"),
			wantErr:     true,
			errContains: "querying candidates",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			jobGetter := mocks.NewMockJobGetter(t)
			embedder := mocks.NewMockEmbedder(t)
			proximity := mocks.NewMockCandidateProximityLister(t)

			jobGetter.EXPECT().GetJob(mock.Anything, "job1").Return(tc.job, tc.jobErr)
			if tc.wantEmbed {
				embedder.EXPECT().EmbedText(mock.Anything, "Go engineer").Return(embedded, tc.embedErr)
			}
			if tc.wantVector != nil {
				proximity.EXPECT().
					ListCandidatesNearVector(mock.Anything, tc.wantVector, 0.4, 50).
					Return(tc.nearby, tc.nearbyErr)
			}

			selector := NewProximityCandidateSelector(jobGetter, embedder, proximity, config)
			ids, err := selector.SelectCandidates(testCtx(), domain.JobDescriptor{JobID: "job1"})

			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func blockUntilDone[T any](ctx context.Context) (T, error) {
	<-ctx.Done()
	var zero T
	return zero, ctx.Err()
}

func TestProximityCandidateSelector_ProviderTimeout(t *testing.T) {
	config := ProximityCandidateSelectorConfig{MinSimilarity: 0.4, Limit: 50, ProviderTimeout: 50 * time.Millisecond}

	cases := []struct {
		name        string
		job         domain.JobPosting
		errContains string
	}{
		{
			name:        "hung_embedding",
			job:         domain.JobPosting{ID: "job1", Title: "Go engineer"},
			errContains: "embedding job",
		},
		{
			name:        "hung_index_query",
			job:         domain.JobPosting{ID: "job1", Embedding: []float32{0.1, 0.2, 0.3}},
			errContains: "querying candidates",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			jobGetter := mocks.NewMockJobGetter(t)
			embedder := mocks.NewMockEmbedder(t)
			proximity := mocks.NewMockCandidateProximityLister(t)

			jobGetter.EXPECT().GetJob(mock.Anything, "job1").Return(tc.job, nil)
			if len(tc.job.Embedding) == 0 {
				embedder.EXPECT().EmbedText(mock.Anything, "Go engineer").
					RunAndReturn(func(ctx context.Context, _ string) ([]float32, error) {
						return blockUntilDone[[]float32](ctx)
					})
			} else {
				proximity.EXPECT().ListCandidatesNearVector(mock.Anything, tc.job.Embedding, 0.4, 50).
					RunAndReturn(func(ctx context.Context, _ []float32, _ float64, _ int) ([]domain.CandidateProximity, error) {
						return blockUntilDone[[]domain.CandidateProximity](ctx)
					})
			}

			selector := NewProximityCandidateSelector(jobGetter, embedder, proximity, config)

			start := time.Now()
			_, err := selector.SelectCandidates(testCtx(), domain.JobDescriptor{JobID: "job1"})

			require.ErrorIs(t, err, context.DeadlineExceeded)
			assert.Contains(t, err.Error(), tc.errContains)
			assert.Less(t, time.Since(start), 5*time.Second)
		})
	}
}

func TestDrainMatchQueueBatch_HungEmbeddingDoesNotStallBatch(t *testing.T) {
	queue := seedQueue(t, 2)

	jobGetter := mocks.NewMockJobGetter(t)
	jobGetter.EXPECT().GetJob(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, jobID string) (domain.JobPosting, error) {
			return domain.JobPosting{ID: jobID, Title: "Go engineer"}, nil
		})
	embedder := mocks.NewMockEmbedder(t)
	embedder.EXPECT().EmbedText(mock.Anything, "Go engineer").
		RunAndReturn(func(ctx context.Context, _ string) ([]float32, error) {
			return blockUntilDone[[]float32](ctx)
		})
	proximity := mocks.NewMockCandidateProximityLister(t)

	selector := NewProximityCandidateSelector(jobGetter, embedder, proximity, ProximityCandidateSelectorConfig{
		MinSimilarity:   0.4,
		Limit:           50,
		ProviderTimeout: 50 * time.Millisecond,
	})
	expand := NewExpandJobPairs(selector, cmdmocks.NewMockPairSubmitter(t), ExpandJobPairsConfig{
		Combos:      domain.AllCombos,
		Concurrency: 1,
	})
	scheduler := &recordingScheduler{}
	cmd := NewDrainMatchQueueBatch(queue, expand, memory.NewCancellations(), scheduler,
		DrainMatchQueueBatchConfig{BatchSize: 100})

	done := make(chan DrainMatchQueueBatchResult, 1)
	go func() {
		result, err := cmd.Execute(testCtx(), DrainMatchQueueBatchRequest{ChainID: "chain1"})
		assert.NoError(t, err)
		done <- result
	}()

	select {
	case result := <-done:
		assert.Equal(t, 2, result.ProcessedCount)
		assert.False(t, result.Rescheduled)
		assert.Empty(t, scheduler.scheduled)
		assert.Equal(t, 0, queue.Len())
	case <-time.After(5 * time.Second):
		t.Fatal("drain batch did not return while the embedding provider hung")
	}
}
