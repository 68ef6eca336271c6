package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/candidate-job-matching/internal/command"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

// MatchingBuildQueue seeds the task queue without starting a drain chain.
type MatchingBuildQueue struct {
	BuildCmd command.Command[command.BuildMatchQueueRequest, command.BuildMatchQueueResult]
}

type MatchingBuildQueueResponse struct {
	Success       bool                   `json:"success"`
	ActiveJobData []domain.JobDescriptor `json:"active_job_data"`
}

func (c MatchingBuildQueue) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	result, err := c.BuildCmd.Execute(ctx, command.BuildMatchQueueRequest{})
	if err != nil {
		logger.ErrorContext(ctx, "unable to build match queue", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	jobs := result.Jobs
	if jobs == nil {
		jobs = []domain.JobDescriptor{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(MatchingBuildQueueResponse{
		Success:       true,
		ActiveJobData: jobs,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write queue build result to response", "error", err)
	}
}
