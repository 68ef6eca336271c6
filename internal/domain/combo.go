package domain

import (
	"errors"
	"fmt"
)

// Combo is a named evaluation variant applied when scoring a candidate against a job.
type Combo string

const (
	ComboSemantic Combo = "semantic"
	ComboSkills   Combo = "skills"
	ComboHolistic Combo = "holistic"
)

var ErrUnknownCombo = errors.New("unknown evaluation combo")

// AllCombos lists every combo in evaluation order.
var AllCombos = []Combo{ComboSemantic, ComboSkills, ComboHolistic}

// ComboProfile is the weighting and prompt profile for a combo.
type ComboProfile struct {
	Combo            Combo
	SimilarityWeight float64
	JudgmentWeight   float64
	// Focus tells the judgment provider which aspects of the match to weigh.
	Focus string
}

// UsesJudgment reports whether scoring under this profile needs a judgment provider call.
func (p ComboProfile) UsesJudgment() bool {
	return p.JudgmentWeight > 0
}

// ParseCombo converts an untrusted combo name into a Combo.
func ParseCombo(s string) (Combo, error) {
	c := Combo(s)
	if _, err := ProfileFor(c); err != nil {
		return "", err
	}
	return c, nil
}

// ParseCombos converts a list of combo names, rejecting duplicates and unknown names.
func ParseCombos(names []string) ([]Combo, error) {
	combos := make([]Combo, 0, len(names))
	seen := make(map[Combo]bool, len(names))
	for _, name := range names {
		c, err := ParseCombo(name)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			return nil, fmt.Errorf("duplicate combo [%s]", name)
		}
		seen[c] = true
		combos = append(combos, c)
	}
	return combos, nil
}

// ProfileFor returns the scoring profile for a combo.
func ProfileFor(c Combo) (ComboProfile, error) {
	switch c {
	case ComboSemantic:
		return ComboProfile{
			Combo:            ComboSemantic,
			SimilarityWeight: 1,
		}, nil
	case ComboSkills:
		return ComboProfile{
			Combo:            ComboSkills,
			SimilarityWeight: 0.5,
			JudgmentWeight:   0.5,
			Focus: "Assess how well the candidate's skills and technical experience cover " +
				"the skills the job requires. Ignore location and seniority.",
		}, nil
	case ComboHolistic:
		return ComboProfile{
			Combo:            ComboHolistic,
			SimilarityWeight: 0.3,
			JudgmentWeight:   0.7,
			Focus: "Assess the candidate's overall suitability for the job, considering skills, " +
				"seniority, domain experience, location and any stated constraints.",
		}, nil
	default:
		return ComboProfile{}, fmt.Errorf("%w [%s]", ErrUnknownCombo, string(c))
	}
}
