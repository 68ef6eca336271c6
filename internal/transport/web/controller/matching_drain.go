package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jbeshir/candidate-job-matching/internal/command"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

// MatchingDrain runs a single drain batch, continuing the given chain or starting a new one.
type MatchingDrain struct {
	DrainCmd command.Command[command.DrainMatchQueueBatchRequest, command.DrainMatchQueueBatchResult]
}

type MatchingDrainRequest struct {
	ChainID string `json:"chain_id"`
}

type MatchingDrainResponse struct {
	ChainID        string `json:"chain_id"`
	ProcessedCount int    `json:"processed_count"`
	Rescheduled    bool   `json:"rescheduled"`
}

func (c MatchingDrain) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body MatchingDrainRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		logger.ErrorContext(ctx, "unable to parse drain request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := c.DrainCmd.Execute(ctx, command.DrainMatchQueueBatchRequest{ChainID: body.ChainID})
	if err != nil {
		logger.ErrorContext(ctx, "unable to drain match queue batch", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(MatchingDrainResponse{
		ChainID:        result.ChainID,
		ProcessedCount: result.ProcessedCount,
		Rescheduled:    result.Rescheduled,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write drain result to response", "error", err)
	}
}
