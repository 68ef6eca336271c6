package domain

import (
	"fmt"
	"math"
)

const (
	MinMatchScore = 0
	MaxMatchScore = 100
)

// CombineScore blends cosine similarity and an optional judgment score into a match score in [0, 100].
//
// Negative similarity counts as no similarity. The judgment is required when the profile
// has judgment weight and ignored otherwise. The result is rounded to two decimal places.
func CombineScore(profile ComboProfile, similarity float64, judgment *float64) (float64, error) {
	if math.IsNaN(similarity) || similarity < -1 || similarity > 1 {
		return 0, fmt.Errorf("similarity %v outside [-1, 1]", similarity)
	}

	totalWeight := profile.SimilarityWeight + profile.JudgmentWeight
	if totalWeight <= 0 {
		return 0, fmt.Errorf("combo [%s] has no scoring weight", profile.Combo)
	}

	weighted := profile.SimilarityWeight * math.Max(0, similarity)

	if profile.UsesJudgment() {
		if judgment == nil {
			return 0, fmt.Errorf("combo [%s] requires a judgment score", profile.Combo)
		}
		j := *judgment
		if math.IsNaN(j) || j < MinMatchScore || j > MaxMatchScore {
			return 0, fmt.Errorf("judgment score %v outside [%d, %d]", j, MinMatchScore, MaxMatchScore)
		}
		weighted += profile.JudgmentWeight * (j / MaxMatchScore)
	}

	score := MaxMatchScore * weighted / totalWeight
	score = math.Round(score*100) / 100

	return math.Max(MinMatchScore, math.Min(MaxMatchScore, score)), nil
}
