package rabbitmq

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTask(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    domain.JobDescriptor
		wantErr bool
	}{
		{
			name: "valid",
			body: `{"jd_id":"job-1","employer_id":"emp-1"}`,
			want: domain.JobDescriptor{JobID: "job-1", EmployerID: "emp-1"},
		},
		{
			name: "missing_employer_tolerated",
			body: `{"jd_id":"job-1"}`,
			want: domain.JobDescriptor{JobID: "job-1"},
		},
		{
			name:    "missing_job_id",
			body:    `{"employer_id":"emp-1"}`,
			wantErr: true,
		},
		{
			name:    "not_json",
			body:    `job-1`,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeTask([]byte(tc.body))
			if tc.wantErr {
				require.ErrorIs(t, err, datasources.ErrMalformedTask)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeTask_WireFormat(t *testing.T) {
	body, err := encodeTask(domain.JobDescriptor{JobID: "job-1", EmployerID: "emp-1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"jd_id":"job-1","employer_id":"emp-1"}`, string(body))
}

func TestQueue_EnqueueDequeue(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping RabbitMQ integration tests in short mode")
	}
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		t.Skip("RABBITMQ_URL not set")
	}

	ctx := context.Background()
	q, err := Dial(url, fmt.Sprintf("match-jobs-test-%s", uuid.NewString()))
	require.NoError(t, err)
	defer func() {
		_, _ = q.getCh.QueueDelete(q.name, false, false, false)
		_ = q.Close()
	}()

	require.NoError(t, q.EnqueueTasks(ctx, []domain.JobDescriptor{
		{JobID: "job-1", EmployerID: "emp-1"},
		{JobID: "job-2", EmployerID: "emp-2"},
	}))

	for _, want := range []string{"job-1", "job-2"} {
		task, ok, err := q.DequeueTask(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, task.JobID)
	}

	_, ok, err := q.DequeueTask(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
