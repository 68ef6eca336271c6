package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/candidate-job-matching/internal/command"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

// PairEvaluate scores a single candidate against a single job synchronously.
type PairEvaluate struct {
	EvaluateCmd command.Command[command.EvaluatePairRequest, command.EvaluatePairResult]
}

type PairEvaluateRequest struct {
	CandidateID string `json:"candidate_id"`
	JobID       string `json:"job_id"`
	Combo       string `json:"combo"`
}

type PairEvaluateResponse struct {
	Evaluated bool     `json:"evaluated"`
	Score     *float64 `json:"score,omitempty"`
}

func (c PairEvaluate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body PairEvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to parse evaluate request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if body.CandidateID == "" || body.JobID == "" {
		logger.ErrorContext(ctx, "evaluate request missing candidate or job id")
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if _, err := domain.ParseCombo(body.Combo); err != nil {
		logger.ErrorContext(ctx, "evaluate request has invalid combo", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := c.EvaluateCmd.Execute(ctx, command.EvaluatePairRequest{
		Pair: domain.MatchPair{
			CandidateID: body.CandidateID,
			JobID:       body.JobID,
			Combo:       body.Combo,
		},
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to evaluate pair", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(PairEvaluateResponse{
		Evaluated: result.Evaluated,
		Score:     result.Score,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write evaluation to response", "error", err)
	}
}
