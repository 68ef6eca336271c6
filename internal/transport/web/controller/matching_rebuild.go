package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/candidate-job-matching/internal/command"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

type MatchingRebuild struct {
	RebuildCmd command.Command[command.RebuildMatchQueueRequest, command.RebuildMatchQueueResult]
}

type MatchingRebuildResponse struct {
	JobsEnqueued int    `json:"jobs_enqueued"`
	ChainID      string `json:"chain_id"`
}

func (c MatchingRebuild) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx).With("principal", domain.PrincipalFromContext(ctx))
	ctx = domain.ContextWithLogger(ctx, logger)

	result, err := c.RebuildCmd.Execute(ctx, command.RebuildMatchQueueRequest{})
	if err != nil {
		logger.ErrorContext(ctx, "unable to rebuild match queue", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(MatchingRebuildResponse{
		JobsEnqueued: result.JobsEnqueued,
		ChainID:      result.ChainID,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write rebuild result to response", "error", err)
	}
}
