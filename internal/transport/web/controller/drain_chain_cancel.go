package controller

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/candidate-job-matching/internal/command"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

type DrainChainCancel struct {
	CancelCmd command.Command[command.CancelDrainChainRequest, command.Empty]
}

func (c DrainChainCancel) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	chainID := mux.Vars(r)["chain_id"]
	logger := domain.LoggerFromContext(r.Context()).With("chain_id", chainID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	_, err := c.CancelCmd.Execute(ctx, command.CancelDrainChainRequest{ChainID: chainID})
	switch {
	case errors.Is(err, command.ErrInvalidChainID):
		logger.ErrorContext(ctx, "invalid chain id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
	case err != nil:
		logger.ErrorContext(ctx, "unable to cancel drain chain", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
