package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileText(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "job_title_and_description",
			got:  JobPosting{Title: "Go Engineer", Description: "Build pipelines"}.ProfileText(),
			want: "Go Engineer\n\nBuild pipelines",
		},
		{
			name: "job_description_only",
			got:  JobPosting{Description: "Build pipelines"}.ProfileText(),
			want: "Build pipelines",
		},
		{
			name: "job_title_only",
			got:  JobPosting{Title: "Go Engineer"}.ProfileText(),
			want: "Go Engineer",
		},
		{
			name: "candidate_headline_and_summary",
			got:  Candidate{Headline: "Backend developer", Summary: "Ten years of Go"}.ProfileText(),
			want: "Backend developer\n\nTen years of Go",
		},
		{
			name: "candidate_summary_only",
			got:  Candidate{Summary: "Ten years of Go"}.ProfileText(),
			want: "Ten years of Go",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestJobPosting_Descriptor(t *testing.T) {
	job := JobPosting{ID: "job-1", EmployerID: "emp-1", Active: true, Title: "ignored"}
	assert.Equal(t, JobDescriptor{JobID: "job-1", EmployerID: "emp-1"}, job.Descriptor())
}
