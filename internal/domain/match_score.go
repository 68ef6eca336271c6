package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

// MatchScore is the persisted outcome of evaluating one candidate against one job under one combo.
// At most one exists for each (CandidateID, JobID, Combo).
type MatchScore struct {
	CandidateID string    `json:"candidate_id"`
	JobID       string    `json:"job_id"`
	Combo       Combo     `json:"combo"`
	Score       float64   `json:"score"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// JudgmentRequest is the input to a structured suitability judgment.
type JudgmentRequest struct {
	Profile   ComboProfile
	Candidate Candidate
	Job       JobPosting
}

// Judgment is a suitability score in [0, 100] with the provider's stated reason.
type Judgment struct {
	Score  float64
	Reason string
}

// MatchPair identifies one evaluation: a candidate scored against a job under a combo.
// Combo is carried as received so that unknown names can be rejected at evaluation.
type MatchPair struct {
	CandidateID string `json:"applicantID"`
	JobID       string `json:"jobID"`
	Combo       string `json:"combo"`
}
