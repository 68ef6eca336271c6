package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jbeshir/candidate-job-matching/internal/datasources"
	"github.com/jbeshir/candidate-job-matching/internal/domain"
)

var ErrInvalidChainID = errors.New("invalid drain chain id")

type CancelDrainChainRequest struct {
	ChainID string
}

// CancelDrainChain stops a drain chain from scheduling further batches.
// A batch already running finishes normally.
type CancelDrainChain struct {
	Canceller datasources.DrainChainCanceller
}

func NewCancelDrainChain(canceller datasources.DrainChainCanceller) *CancelDrainChain {
	return &CancelDrainChain{Canceller: canceller}
}

func (c *CancelDrainChain) Execute(ctx context.Context, req CancelDrainChainRequest) (Empty, error) {
	chainID := strings.TrimSpace(req.ChainID)
	if chainID == "" {
		return Empty{}, ErrInvalidChainID
	}

	if err := c.Canceller.CancelDrainChain(ctx, chainID); err != nil {
		return Empty{}, fmt.Errorf("cancelling drain chain: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "drain chain cancelled", "chain_id", chainID)
	return Empty{}, nil
}
