package datasources

import (
	"context"

	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

// CandidateProximityLister queries a vector index for opted-in candidates near a vector.
type CandidateProximityLister interface {
	ListCandidatesNearVector(
		ctx context.Context,
		vector []float32,
		minScore float64,
		limit int,
	) ([]domain.CandidateProximity, error)
}

// NullSimilarityRepository is a null implementation of CandidateProximityLister.
type NullSimilarityRepository struct{}

var _ CandidateProximityLister = NullSimilarityRepository{}

func (NullSimilarityRepository) ListCandidatesNearVector(
	_ context.Context,
	_ []float32,
	_ float64,
	_ int,
) ([]domain.CandidateProximity, error) {
	return nil, nil
}
