package datasources

import (
	"context"

	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

type ScoreRepository interface {
	MatchScoreUpserter
	JobMatchScoreLister
}

// MatchScoreUpserter writes the single record for a (candidate, job, combo) key,
// overwriting any existing score for that key.
type MatchScoreUpserter interface {
	UpsertMatchScore(ctx context.Context, score domain.MatchScore) error
}

// JobMatchScoreLister lists scores for a job under one combo, best first.
type JobMatchScoreLister interface {
	ListJobMatchScores(
		ctx context.Context,
		jobID string,
		combo domain.Combo,
		page, pageSize int,
	) ([]domain.MatchScore, error)
}
