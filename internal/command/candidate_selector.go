package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

// CandidateSelector chooses which candidates are evaluated against a job.
type CandidateSelector interface {
	SelectCandidates(ctx context.Context, job domain.JobDescriptor) ([]string, error)
}

var (
	_ CandidateSelector = (*OptedInCandidateSelector)(nil)
	_ CandidateSelector = (*ProximityCandidateSelector)(nil)
)

// OptedInCandidateSelector selects every candidate who has opted in to matching.
type OptedInCandidateSelector struct {
	Lister datasources.OptedInCandidateLister
}

func NewOptedInCandidateSelector(lister datasources.OptedInCandidateLister) *OptedInCandidateSelector {
	return &OptedInCandidateSelector{Lister: lister}
}

func (s *OptedInCandidateSelector) SelectCandidates(ctx context.Context, _ domain.JobDescriptor) ([]string, error) {
	ids, err := s.Lister.ListOptedInCandidateIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing opted-in candidates: %w", err)
	}
	return ids, nil
}

// ProximityCandidateSelectorConfig holds configuration for proximity prefiltering.
type ProximityCandidateSelectorConfig struct {
	// MinSimilarity is the lowest vector index score a candidate may have to be selected.
	MinSimilarity float64

	// Limit caps the number of candidates selected per job.
	Limit int

	// ProviderTimeout bounds each embedding and vector index call. Zero means no bound.
	ProviderTimeout time.Duration
}

// ProximityCandidateSelector selects the opted-in candidates nearest to the job's embedding
// in the vector index. Jobs without a stored embedding are embedded on demand.
type ProximityCandidateSelector struct {
	JobGetter datasources.JobGetter
	Embedder  datasources.Embedder
	Proximity datasources.CandidateProximityLister
	Config    ProximityCandidateSelectorConfig
}

func NewProximityCandidateSelector(
	jobGetter datasources.JobGetter,
	embedder datasources.Embedder,
	proximity datasources.CandidateProximityLister,
	config ProximityCandidateSelectorConfig,
) *ProximityCandidateSelector {
	return &ProximityCandidateSelector{
		JobGetter: jobGetter,
		Embedder:  embedder,
		Proximity: proximity,
		Config:    config,
	}
}

func (s *ProximityCandidateSelector) SelectCandidates(
	ctx context.Context, job domain.JobDescriptor,
) ([]string, error) {
	posting, err := s.JobGetter.GetJob(ctx, job.JobID)
	if err != nil {
		return nil, fmt.Errorf("getting job: %w", err)
	}

	vector := posting.Embedding
	if len(vector) == 0 {
		vector, err = s.embed(ctx, posting.ProfileText())
		if err != nil {
			return nil, fmt.Errorf("embedding job: %w", err)
		}
	}

	nearby, err := s.listNearby(ctx, vector)
	if err != nil {
		return nil, fmt.Errorf("querying candidates near job: %w", err)
	}

	ids := make([]string, 0, len(nearby))
	for _, c := range nearby {
		ids = append(ids, c.CandidateID)
	}
	return ids, nil
}

func (s *ProximityCandidateSelector) embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := s.providerContext(ctx)
	defer cancel()
	return s.Embedder.EmbedText(ctx, text)
}

func (s *ProximityCandidateSelector) listNearby(
	ctx context.Context, vector []float32,
) ([]domain.CandidateProximity, error) {
	ctx, cancel := s.providerContext(ctx)
	defer cancel()
	return s.Proximity.ListCandidatesNearVector(ctx, vector, s.Config.MinSimilarity, s.Config.Limit)
}

func (s *ProximityCandidateSelector) providerContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Config.ProviderTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.Config.ProviderTimeout)
}
