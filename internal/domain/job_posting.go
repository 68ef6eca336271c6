package domain

// JobPosting is a job as seen by the matching pipeline. Postings are created and
// activated elsewhere; matching only reads them.
type JobPosting struct {
	ID          string
	EmployerID  string
	Active      bool
	Title       string
	Description string
	Embedding   []float32
}

// Descriptor projects the posting to the minimal form carried by the task queue.
func (j JobPosting) Descriptor() JobDescriptor {
	return JobDescriptor{JobID: j.ID, EmployerID: j.EmployerID}
}

// JobDescriptor is one task queue entry: a job whose candidates should be scored.
type JobDescriptor struct {
	JobID      string `json:"jd_id"`
	EmployerID string `json:"employer_id"`
}

// ProfileText is the text embedded and judged for the job.
func (j JobPosting) ProfileText() string {
	if j.Title == "" {
		return j.Description
	}
	if j.Description == "" {
		return j.Title
	}
	return j.Title + "\n\n" + j.Description
}
