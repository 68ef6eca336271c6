package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

type JobMatchesList struct {
	Lister      datasources.JobMatchScoreLister
	CacheMaxAge time.Duration
}

type JobMatchesListResponse struct {
	Data     []domain.MatchScore    `json:"data"`
	Metadata JobMatchesListMetadata `json:"metadata"`
}

type JobMatchesListMetadata struct {
	Combo    domain.Combo `json:"combo"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

func (c JobMatchesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["job_id"]
	logger := domain.LoggerFromContext(r.Context()).With("job_id", jobID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	combo, err := parseComboQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse combo in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	scores, err := c.Lister.ListJobMatchScores(ctx, jobID, combo, page, pageSize)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list job match scores", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if scores == nil {
		scores = []domain.MatchScore{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(JobMatchesListResponse{
		Data: scores,
		Metadata: JobMatchesListMetadata{
			Combo:    combo,
			Page:     page,
			PageSize: pageSize,
		},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write job matches to response", "error", err)
	}
}
