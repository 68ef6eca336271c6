package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/jbeshir/candidate-job-matching/internal/datasources/memory"
	"github.com/jbeshir/candidate-job-matching/internal/datasources/mocks"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testCtx() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

func TestBuildMatchQueue_Execute(t *testing.T) {
	jobs := []domain.JobDescriptor{
		{JobID: "job1", EmployerID: "emp1"},
		{JobID: "job2", EmployerID: "emp1"},
	}

	cases := []struct {
		name          string
		listed        []domain.JobDescriptor
		listErr       error
		enqueueErr    error
		wantEnqueue   bool
		wantCount     int
		wantErr       bool
		wantErrIs     error
		wantErrSubstr string
	}{
		{
			name:        "enqueues_all_active_jobs",
			listed:      jobs,
			wantEnqueue: true,
			wantCount:   2,
		},
		{
			name:      "no_active_jobs",
			listed:    []domain.JobDescriptor{},
			wantCount: 0,
		},
		{
			name:          "read_failure_enqueues_nothing",
			listErr:       errors.New("connection refused"),
			wantErr:       true,
			wantErrIs:     ErrBuildFailed,
			wantErrSubstr: "connection refused",
		},
		{
			name:          "enqueue_failure",
			listed:        jobs,
			enqueueErr:    errors.New("deadlock"),
			wantEnqueue:   true,
			wantErr:       true,
			wantErrSubstr: "enqueueing active jobs",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockActiveJobLister(t)
			enqueuer := mocks.NewMockTaskEnqueuer(t)

			lister.EXPECT().ListActiveJobDescriptors(mock.Anything).Return(tc.listed, tc.listErr)
			if tc.wantEnqueue {
				enqueuer.EXPECT().EnqueueTasks(mock.Anything, tc.listed).Return(tc.enqueueErr)
			}

			cmd := NewBuildMatchQueue(lister, enqueuer)
			result, err := cmd.Execute(testCtx(), BuildMatchQueueRequest{})

			if tc.wantErr {
				require.Error(t, err)
				if tc.wantErrIs != nil {
					require.ErrorIs(t, err, tc.wantErrIs)
				}
				assert.Contains(t, err.Error(), tc.wantErrSubstr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCount, result.Count)
			assert.Len(t, result.Jobs, tc.wantCount)
		})
	}
}

func TestBuildMatchQueue_OnlyActiveJobsAreSeeded(t *testing.T) {
	profiles := memory.NewProfileStore()
	for i := range 8 {
		profiles.PutJob(domain.JobPosting{
			ID:         fmt.Sprintf("job-%d", i),
			EmployerID: "emp1",
			Active:     i < 5,
		})
	}
	queue := memory.NewQueue()

	result, err := NewBuildMatchQueue(profiles, queue).Execute(testCtx(), BuildMatchQueueRequest{})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Count)
	assert.Equal(t, 5, queue.Len())
	for _, job := range result.Jobs {
		posting, err := profiles.GetJob(context.Background(), job.JobID)
		require.NoError(t, err)
		assert.True(t, posting.Active, "inactive job %s enqueued", job.JobID)
		assert.Equal(t, "emp1", job.EmployerID)
	}
}
