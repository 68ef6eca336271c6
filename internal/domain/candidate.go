package domain

// Candidate is a candidate profile as seen by the matching pipeline.
type Candidate struct {
	ID        string
	OptedIn   bool
	Headline  string
	Summary   string
	Embedding []float32
}

// ProfileText is the text embedded and judged for the candidate.
func (c Candidate) ProfileText() string {
	if c.Headline == "" {
		return c.Summary
	}
	if c.Summary == "" {
		return c.Headline
	}
	return c.Headline + "\n\n" + c.Summary
}

// CandidateProximity is a candidate returned by a vector index query for a job.
type CandidateProximity struct {
	CandidateID string
	Score       float64
}
