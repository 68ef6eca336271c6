package datasources

import (
	"context"

	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

// ProfileRepository combines the read-only job and candidate interfaces used by matching.
type ProfileRepository interface {
	ActiveJobLister
	JobGetter
	OptedInCandidateLister
	CandidateGetter
}

// ActiveJobLister projects every active job posting to its queue descriptor.
type ActiveJobLister interface {
	ListActiveJobDescriptors(ctx context.Context) ([]domain.JobDescriptor, error)
}

// JobGetter returns an error wrapping domain.ErrNotFound if the job does not exist.
type JobGetter interface {
	GetJob(ctx context.Context, jobID string) (domain.JobPosting, error)
}

type OptedInCandidateLister interface {
	ListOptedInCandidateIDs(ctx context.Context) ([]string, error)
}

// CandidateGetter returns an error wrapping domain.ErrNotFound if the candidate does not exist.
type CandidateGetter interface {
	GetCandidate(ctx context.Context, candidateID string) (domain.Candidate, error)
}
