package command

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jbeshir/candidate-job-matching/internal/domain"
	"golang.org/x/sync/errgroup"
)

// PairSubmitter hands one (candidate, job, combo) pair off for evaluation.
type PairSubmitter interface {
	SubmitPair(ctx context.Context, pair domain.MatchPair) error
}

type ExpandJobPairsRequest struct {
	Job domain.JobDescriptor
}

// ExpandJobPairsResult counts the pairs handed off for a job.
type ExpandJobPairsResult struct {
	Candidates int
	Submitted  int
	Failed     int
}

// ExpandJobPairsConfig holds configuration for pair expansion.
type ExpandJobPairsConfig struct {
	// Combos is the subset of evaluation combos each candidate is scored under.
	Combos []domain.Combo

	// Concurrency bounds how many pairs are submitted at once for a single job.
	Concurrency int
}

// ExpandJobPairs fans a job out into one evaluation per selected candidate and combo.
type ExpandJobPairs struct {
	Selector  CandidateSelector
	Submitter PairSubmitter
	Config    ExpandJobPairsConfig
}

// NewExpandJobPairs creates a properly initialized ExpandJobPairs command.
func NewExpandJobPairs(
	selector CandidateSelector,
	submitter PairSubmitter,
	config ExpandJobPairsConfig,
) *ExpandJobPairs {
	return &ExpandJobPairs{
		Selector:  selector,
		Submitter: submitter,
		Config:    config,
	}
}

// Execute submits every pair for the job. Submission failures are counted, not returned;
// only a failure to select candidates fails the expansion.
func (c *ExpandJobPairs) Execute(ctx context.Context, req ExpandJobPairsRequest) (ExpandJobPairsResult, error) {
	logger := domain.LoggerFromContext(ctx).With("job_id", req.Job.JobID)
	ctx = domain.ContextWithLogger(ctx, logger)

	candidateIDs, err := c.Selector.SelectCandidates(ctx, req.Job)
	if err != nil {
		return ExpandJobPairsResult{}, fmt.Errorf("selecting candidates: %w", err)
	}

	combos := c.Config.Combos
	if len(combos) == 0 {
		combos = domain.AllCombos
	}

	var submitted, failed atomic.Int64

	g := new(errgroup.Group)
	if c.Config.Concurrency > 0 {
		g.SetLimit(c.Config.Concurrency)
	}
	for _, candidateID := range candidateIDs {
		for _, combo := range combos {
			pair := domain.MatchPair{
				CandidateID: candidateID,
				JobID:       req.Job.JobID,
				Combo:       string(combo),
			}
			g.Go(func() error {
				if err := c.Submitter.SubmitPair(ctx, pair); err != nil {
					logger.WarnContext(ctx, "failed to submit pair",
						"candidate_id", pair.CandidateID, "combo", pair.Combo, "error", err)
					failed.Add(1)
					return nil
				}
				submitted.Add(1)
				return nil
			})
		}
	}
	_ = g.Wait()

	result := ExpandJobPairsResult{
		Candidates: len(candidateIDs),
		Submitted:  int(submitted.Load()),
		Failed:     int(failed.Load()),
	}

	logger.InfoContext(ctx, "job pairs expanded",
		"candidate_count", result.Candidates,
		"success_count", result.Submitted,
		"fail_count", result.Failed)

	return result, nil
}
