package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/feeds"
	"github.com/gorilla/mux"
	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

// JobMatchesRSS publishes the best matches for a job as an RSS feed for employer feed readers.
type JobMatchesRSS struct {
	FeedBaseURL     string
	FeedAuthorName  string
	FeedAuthorEmail string
	Lister          datasources.JobMatchScoreLister
	ItemLimit       int
	CacheMaxAge     time.Duration
}

func (c JobMatchesRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["job_id"]
	logger := domain.LoggerFromContext(r.Context()).With("job_id", jobID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	combo, err := parseComboQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse combo in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	limit := c.ItemLimit
	if limit <= 0 {
		limit = defaultPageSize
	}

	scores, err := c.Lister.ListJobMatchScores(ctx, jobID, combo, 1, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch job matches for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	jobPath := "/v1/jobs/" + url.PathEscape(jobID)
	feed := &feeds.Feed{
		Title:       fmt.Sprintf("Top %s matches for job %s", combo, jobID),
		Link:        &feeds.Link{Href: c.FeedBaseURL + jobPath + "/matches.rss?combo=" + string(combo)},
		Description: "Candidates scored against this job, best matches first",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	for _, s := range scores {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          fmt.Sprintf("%s/%s/%s", s.JobID, s.CandidateID, s.Combo),
			IsPermaLink: "false",
			Title:       fmt.Sprintf("Candidate %s: %.2f", s.CandidateID, s.Score),
			Link:        &feeds.Link{Href: c.FeedBaseURL + jobPath + "/matches?combo=" + string(combo)},
			Description: fmt.Sprintf("Scored %.2f out of %d under the %s combo.", s.Score, domain.MaxMatchScore, s.Combo),
			Created:     s.EvaluatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
