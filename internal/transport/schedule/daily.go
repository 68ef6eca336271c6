package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/candidate-job-matching/internal/command"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

// Daily runs the match queue rebuild once a day at a fixed UTC time of day.
type Daily struct {
	Rebuild command.Command[command.RebuildMatchQueueRequest, command.RebuildMatchQueueResult]
	// At is the offset from midnight UTC at which the rebuild fires.
	At  time.Duration
	Now func() time.Time
}

// ParseTimeOfDay parses an "HH:MM" time of day into an offset from midnight.
func ParseTimeOfDay(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parsing time of day [%s]: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// NextRun returns the first run time strictly after now.
func (d *Daily) NextRun(now time.Time) time.Time {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	next := midnight.Add(d.At)
	if !next.After(now) {
		next = midnight.AddDate(0, 0, 1).Add(d.At)
	}
	return next
}

func (d *Daily) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)
	now := d.Now
	if now == nil {
		now = time.Now
	}

	for {
		next := d.NextRun(now())
		logger.InfoContext(ctx, "next match queue rebuild scheduled", "at", next)

		timer := time.NewTimer(next.Sub(now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		result, err := d.Rebuild.Execute(ctx, command.RebuildMatchQueueRequest{})
		if err != nil {
			logger.ErrorContext(ctx, "daily match queue rebuild failed", "error", err)
			continue
		}
		logger.InfoContext(ctx, "daily match queue rebuild triggered",
			"jobs_enqueued", result.JobsEnqueued, "chain_id", result.ChainID)
	}
}
