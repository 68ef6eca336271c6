package memory

import (
	"context"
	"sync"

	"github.com/jbeshir/candidate-job-matching/internal/datasources"
)

var _ datasources.DrainChainCancellationRepository = (*Cancellations)(nil)

type Cancellations struct {
	mu        sync.RWMutex
	cancelled map[string]bool
}

func NewCancellations() *Cancellations {
	return &Cancellations{cancelled: make(map[string]bool)}
}

func (c *Cancellations) CancelDrainChain(_ context.Context, chainID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelled[chainID] = true
	return nil
}

func (c *Cancellations) IsDrainChainCancelled(_ context.Context, chainID string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.cancelled[chainID], nil
}
