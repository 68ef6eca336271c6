package datasources

import (
	"context"
	"errors"

	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

var ErrJudgeUnavailable = errors.New("no suitability judge configured")

// SuitabilityJudge scores a candidate against a job under a combo's prompt profile.
// Returned scores are within [0, 100].
type SuitabilityJudge interface {
	JudgeSuitability(ctx context.Context, req domain.JudgmentRequest) (domain.Judgment, error)
}

// NullJudge is a null implementation of SuitabilityJudge. Combos needing a judgment
// are skipped when it is configured.
type NullJudge struct{}

var _ SuitabilityJudge = NullJudge{}

func (NullJudge) JudgeSuitability(_ context.Context, _ domain.JudgmentRequest) (domain.Judgment, error) {
	return domain.Judgment{}, ErrJudgeUnavailable
}
