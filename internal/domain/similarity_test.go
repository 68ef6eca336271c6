package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vectorOfLength(n int, value float32) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = value
	}
	return v
}

func TestSimilarityEngine_Similarity(t *testing.T) {
	cases := []struct {
		name      string
		dimension int
		a         []float32
		b         []float32
		want      float64
	}{
		{
			name:      "identical",
			dimension: 2,
			a:         []float32{1, 0},
			b:         []float32{1, 0},
			want:      1,
		},
		{
			name:      "orthogonal",
			dimension: 2,
			a:         []float32{1, 0},
			b:         []float32{0, 1},
			want:      0,
		},
		{
			name:      "opposite",
			dimension: 2,
			a:         []float32{1, 0},
			b:         []float32{-1, 0},
			want:      -1,
		},
		{
			name:      "scale_invariant",
			dimension: 3,
			a:         []float32{1, 2, 3},
			b:         []float32{2, 4, 6},
			want:      1,
		},
		{
			name:      "full_dimension",
			dimension: 768,
			a:         vectorOfLength(768, 0.25),
			b:         vectorOfLength(768, 0.5),
			want:      1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := NewSimilarityEngine(tc.dimension)
			got, err := engine.Similarity(tc.a, tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, -1.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestSimilarityEngine_Similarity_Errors(t *testing.T) {
	cases := []struct {
		name    string
		a       []float32
		b       []float32
		wantErr error
	}{
		{
			name:    "second_vector_short",
			a:       vectorOfLength(768, 1),
			b:       vectorOfLength(500, 1),
			wantErr: ErrDimensionMismatch,
		},
		{
			name:    "first_vector_short",
			a:       vectorOfLength(500, 1),
			b:       vectorOfLength(768, 1),
			wantErr: ErrDimensionMismatch,
		},
		{
			name:    "both_wrong_but_equal",
			a:       vectorOfLength(500, 1),
			b:       vectorOfLength(500, 1),
			wantErr: ErrDimensionMismatch,
		},
		{
			name:    "zero_first",
			a:       vectorOfLength(768, 0),
			b:       vectorOfLength(768, 1),
			wantErr: ErrDegenerateVector,
		},
		{
			name:    "zero_second",
			a:       vectorOfLength(768, 1),
			b:       vectorOfLength(768, 0),
			wantErr: ErrDegenerateVector,
		},
		{
			name:    "empty",
			a:       nil,
			b:       nil,
			wantErr: ErrDimensionMismatch,
		},
	}

	engine := NewSimilarityEngine(768)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.Similarity(tc.a, tc.b)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCosineSimilarity_StaysInRange(t *testing.T) {
	a := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}
	got, err := CosineSimilarity(a, a)
	require.NoError(t, err)
	assert.LessOrEqual(t, got, 1.0)
	assert.InDelta(t, 1.0, got, 1e-9)
}
