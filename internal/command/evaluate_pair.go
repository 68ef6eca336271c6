package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

type EvaluatePairRequest struct {
	Pair domain.MatchPair
}

// EvaluatePairResult reports whether a score was stored. Score is nil when the pair was skipped.
type EvaluatePairResult struct {
	Evaluated bool
	Score     *float64
}

// EvaluatePairConfig holds configuration for pair evaluation.
type EvaluatePairConfig struct {
	// ProviderTimeout bounds each call to the embedding and judgment providers.
	ProviderTimeout time.Duration
}

// EvaluatePair scores one candidate against one job under one combo and stores the result.
type EvaluatePair struct {
	CandidateGetter datasources.CandidateGetter
	JobGetter       datasources.JobGetter
	Embedder        datasources.Embedder
	Judge           datasources.SuitabilityJudge
	ScoreUpserter   datasources.MatchScoreUpserter
	Similarity      domain.SimilarityEngine
	Config          EvaluatePairConfig
}

var _ PairSubmitter = (*EvaluatePair)(nil)

// NewEvaluatePair creates a properly initialized EvaluatePair command.
func NewEvaluatePair(
	candidateGetter datasources.CandidateGetter,
	jobGetter datasources.JobGetter,
	embedder datasources.Embedder,
	judge datasources.SuitabilityJudge,
	scoreUpserter datasources.MatchScoreUpserter,
	similarity domain.SimilarityEngine,
	config EvaluatePairConfig,
) *EvaluatePair {
	return &EvaluatePair{
		CandidateGetter: candidateGetter,
		JobGetter:       jobGetter,
		Embedder:        embedder,
		Judge:           judge,
		ScoreUpserter:   scoreUpserter,
		Similarity:      similarity,
		Config:          config,
	}
}

// Execute evaluates the pair. It never returns an error: any failure is logged and
// reported as a skipped evaluation, leaving no score record for the pair.
func (c *EvaluatePair) Execute(ctx context.Context, req EvaluatePairRequest) (EvaluatePairResult, error) {
	logger := domain.LoggerFromContext(ctx).With(
		"candidate_id", req.Pair.CandidateID,
		"job_id", req.Pair.JobID,
		"combo", req.Pair.Combo,
	)
	ctx = domain.ContextWithLogger(ctx, logger)

	score, err := c.evaluate(ctx, req.Pair)
	if err != nil {
		logger.WarnContext(ctx, "pair evaluation skipped", "error", err)
		return EvaluatePairResult{}, nil
	}

	logger.DebugContext(ctx, "pair evaluated", "score", score)
	return EvaluatePairResult{Evaluated: true, Score: &score}, nil
}

// SubmitPair evaluates the pair in-process.
func (c *EvaluatePair) SubmitPair(ctx context.Context, pair domain.MatchPair) error {
	_, err := c.Execute(ctx, EvaluatePairRequest{Pair: pair})
	return err
}

func (c *EvaluatePair) evaluate(ctx context.Context, pair domain.MatchPair) (float64, error) {
	profile, err := domain.ProfileFor(domain.Combo(pair.Combo))
	if err != nil {
		return 0, err
	}

	candidate, err := c.CandidateGetter.GetCandidate(ctx, pair.CandidateID)
	if err != nil {
		return 0, fmt.Errorf("getting candidate: %w", err)
	}
	job, err := c.JobGetter.GetJob(ctx, pair.JobID)
	if err != nil {
		return 0, fmt.Errorf("getting job: %w", err)
	}

	if len(candidate.Embedding) == 0 {
		if candidate.Embedding, err = c.embed(ctx, candidate.ProfileText()); err != nil {
			return 0, fmt.Errorf("embedding candidate: %w", err)
		}
	}
	if len(job.Embedding) == 0 {
		if job.Embedding, err = c.embed(ctx, job.ProfileText()); err != nil {
			return 0, fmt.Errorf("embedding job: %w", err)
		}
	}

	similarity, err := c.Similarity.Similarity(candidate.Embedding, job.Embedding)
	if err != nil {
		return 0, fmt.Errorf("computing similarity: %w", err)
	}

	var judgmentScore *float64
	if profile.UsesJudgment() {
		judgment, err := c.judge(ctx, domain.JudgmentRequest{
			Profile:   profile,
			Candidate: candidate,
			Job:       job,
		})
		if err != nil {
			return 0, fmt.Errorf("judging suitability: %w", err)
		}
		judgmentScore = &judgment.Score
	}

	score, err := domain.CombineScore(profile, similarity, judgmentScore)
	if err != nil {
		return 0, fmt.Errorf("combining score: %w", err)
	}

	if err := c.ScoreUpserter.UpsertMatchScore(ctx, domain.MatchScore{
		CandidateID: pair.CandidateID,
		JobID:       pair.JobID,
		Combo:       profile.Combo,
		Score:       score,
		EvaluatedAt: time.Now().UTC(),
	}); err != nil {
		return 0, fmt.Errorf("storing score: %w", err)
	}

	return score, nil
}

func (c *EvaluatePair) embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := c.providerContext(ctx)
	defer cancel()
	return c.Embedder.EmbedText(ctx, text)
}

func (c *EvaluatePair) judge(ctx context.Context, req domain.JudgmentRequest) (domain.Judgment, error) {
	ctx, cancel := c.providerContext(ctx)
	defer cancel()
	return c.Judge.JudgeSuitability(ctx, req)
}

func (c *EvaluatePair) providerContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.Config.ProviderTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.Config.ProviderTimeout)
}
