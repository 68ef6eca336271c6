package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

var _ datasources.ProfileRepository = (*ProfileStore)(nil)

// ProfileStore holds job postings and candidates in memory.
type ProfileStore struct {
	mu         sync.RWMutex
	jobs       map[string]domain.JobPosting
	candidates map[string]domain.Candidate
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		jobs:       make(map[string]domain.JobPosting),
		candidates: make(map[string]domain.Candidate),
	}
}

func (s *ProfileStore) PutJob(job domain.JobPosting) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs[job.ID] = job
}

func (s *ProfileStore) PutCandidate(candidate domain.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.candidates[candidate.ID] = candidate
}

func (s *ProfileStore) ListActiveJobDescriptors(_ context.Context) ([]domain.JobDescriptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var descriptors []domain.JobDescriptor
	for _, job := range s.jobs {
		if job.Active {
			descriptors = append(descriptors, job.Descriptor())
		}
	}
	slices.SortFunc(descriptors, func(a, b domain.JobDescriptor) int {
		return cmp.Compare(a.JobID, b.JobID)
	})
	return descriptors, nil
}

func (s *ProfileStore) GetJob(_ context.Context, jobID string) (domain.JobPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return domain.JobPosting{}, fmt.Errorf("job [%s]: %w", jobID, domain.ErrNotFound)
	}
	return job, nil
}

func (s *ProfileStore) ListOptedInCandidateIDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for id, candidate := range s.candidates {
		if candidate.OptedIn {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *ProfileStore) GetCandidate(_ context.Context, candidateID string) (domain.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidate, ok := s.candidates[candidateID]
	if !ok {
		return domain.Candidate{}, fmt.Errorf("candidate [%s]: %w", candidateID, domain.ErrNotFound)
	}
	return candidate, nil
}
