package datasources

import (
	"context"
	"errors"
)

var ErrEmbedderUnavailable = errors.New("no embedding provider configured")

// Embedder embeds profile text into a vector for similarity scoring. Used when a
// profile has no stored embedding.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// NullEmbedder is a null implementation of Embedder. Profiles without a stored
// embedding cannot be evaluated when it is configured.
type NullEmbedder struct{}

var _ Embedder = NullEmbedder{}

func (NullEmbedder) EmbedText(_ context.Context, _ string) ([]float32, error) {
	return nil, ErrEmbedderUnavailable
}
