package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

var _ datasources.ScoreRepository = (*ScoreStore)(nil)

type scoreKey struct {
	candidateID string
	jobID       string
	combo       domain.Combo
}

// ScoreStore keeps one match score per (candidate, job, combo) in memory.
type ScoreStore struct {
	mu     sync.RWMutex
	scores map[scoreKey]domain.MatchScore
}

func NewScoreStore() *ScoreStore {
	return &ScoreStore{scores: make(map[scoreKey]domain.MatchScore)}
}

func (s *ScoreStore) UpsertMatchScore(_ context.Context, score domain.MatchScore) error {
	if _, err := domain.ProfileFor(score.Combo); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.scores[scoreKey{score.CandidateID, score.JobID, score.Combo}] = score
	return nil
}

func (s *ScoreStore) ListJobMatchScores(
	_ context.Context, jobID string, combo domain.Combo, page, pageSize int,
) ([]domain.MatchScore, error) {
	s.mu.RLock()
	var matches []domain.MatchScore
	for key, score := range s.scores {
		if key.jobID == jobID && key.combo == combo {
			matches = append(matches, score)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(matches, func(a, b domain.MatchScore) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.CandidateID, b.CandidateID)
	})

	offset := (page - 1) * pageSize
	if offset >= len(matches) {
		return []domain.MatchScore{}, nil
	}
	end := min(offset+pageSize, len(matches))
	return matches[offset:end], nil
}

// Get returns the stored score for a key.
func (s *ScoreStore) Get(candidateID, jobID string, combo domain.Combo) (domain.MatchScore, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	score, ok := s.scores[scoreKey{candidateID, jobID, combo}]
	return score, ok
}

// Len returns the number of stored records.
func (s *ScoreStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.scores)
}
