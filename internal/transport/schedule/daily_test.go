package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/jbeshir/candidate-job-matching/internal/command"
	cmdmocks "github.com/jbeshir/candidate-job-matching/internal/command/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "03:30", want: 3*time.Hour + 30*time.Minute},
		{in: "23:59", want: 23*time.Hour + 59*time.Minute},
		{in: "24:00", wantErr: true},
		{in: "3pm", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDaily_NextRun(t *testing.T) {
	daily := &Daily{At: 3 * time.Hour}

	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "later_today",
			now:  time.Date(2025, 6, 1, 1, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly_at_run_time_moves_to_tomorrow",
			now:  time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC),
		},
		{
			name: "end_of_month",
			now:  time.Date(2025, 6, 30, 22, 0, 0, 0, time.UTC),
			want: time.Date(2025, 7, 1, 3, 0, 0, 0, time.UTC),
		},
		{
			name: "non_utc_input",
			now:  time.Date(2025, 6, 1, 1, 0, 0, 0, time.FixedZone("UTC+5", 5*60*60)),
			want: time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.want.Equal(daily.NextRun(tc.now)), "got %v", daily.NextRun(tc.now))
		})
	}
}

func TestDaily_RunFiresRebuild(t *testing.T) {
	ctx, cancel := context.WithCancel(testCtx())
	defer cancel()

	rebuild := cmdmocks.NewMockCommand[command.RebuildMatchQueueRequest, command.RebuildMatchQueueResult](t)
	rebuild.EXPECT().Execute(mock.Anything, command.RebuildMatchQueueRequest{}).
		RunAndReturn(func(context.Context, command.RebuildMatchQueueRequest) (command.RebuildMatchQueueResult, error) {
			cancel()
			return command.RebuildMatchQueueResult{JobsEnqueued: 3, ChainID: "chain1"}, nil
		}).Once()

	// Ten milliseconds before midnight, with the run time at midnight.
	now := time.Date(2025, 6, 1, 23, 59, 59, 990_000_000, time.UTC)
	daily := &Daily{Rebuild: rebuild, At: 0, Now: func() time.Time { return now }}

	done := make(chan error, 1)
	go func() { done <- daily.Run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("daily scheduler did not fire")
	}
}
