package datasources

import "context"

type DrainChainCancellationRepository interface {
	DrainChainCanceller
	DrainChainCancellationChecker
}

type DrainChainCanceller interface {
	CancelDrainChain(ctx context.Context, chainID string) error
}

type DrainChainCancellationChecker interface {
	IsDrainChainCancelled(ctx context.Context, chainID string) (bool, error)
}
