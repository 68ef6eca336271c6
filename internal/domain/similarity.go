package domain

import (
	"errors"
	"fmt"
	"math"
)

// DefaultEmbeddingDimension matches the output dimension requested from the embedding provider.
const DefaultEmbeddingDimension = 1024

var (
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	ErrDegenerateVector  = errors.New("vector has zero magnitude")
)

// SimilarityEngine computes cosine similarity between embeddings of a fixed dimension.
type SimilarityEngine struct {
	Dimension int
}

// NewSimilarityEngine returns an engine accepting only vectors of the given dimension.
func NewSimilarityEngine(dimension int) SimilarityEngine {
	return SimilarityEngine{Dimension: dimension}
}

// Similarity returns the cosine similarity of a and b, in [-1, 1].
// Vectors are never truncated or padded to fit the engine's dimension.
func (e SimilarityEngine) Similarity(a, b []float32) (float64, error) {
	if len(a) != e.Dimension {
		return 0, fmt.Errorf("%w: first vector has %d elements, want %d", ErrDimensionMismatch, len(a), e.Dimension)
	}
	if len(b) != e.Dimension {
		return 0, fmt.Errorf("%w: second vector has %d elements, want %d", ErrDimensionMismatch, len(b), e.Dimension)
	}
	return CosineSimilarity(a, b)
}

// CosineSimilarity returns dot(a,b) / (|a|·|b|) for two vectors of equal length.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d elements", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0, ErrDegenerateVector
	}

	similarity := dot / (math.Sqrt(normA) * math.Sqrt(normB))

	// Rounding can push results for parallel vectors fractionally outside the valid range.
	return math.Max(-1, math.Min(1, similarity)), nil
}
