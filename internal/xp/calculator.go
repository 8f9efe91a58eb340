package xp

import (
	"context"
	"math"
)

// Compute returns the XP award for installing a part of the given difficulty
// and category. The reward is round(base × category multiplier), plus a flat
// bonus when this is the first part of its category on the garage item.
//
// Pure and deterministic: the same inputs always produce the same award.
func Compute(difficulty int, category string, firstInCategory bool) int {
	base := baseForDifficulty(difficulty)
	multiplier := multiplierForCategory(category)

	award := int(math.Round(float64(base) * multiplier))
	if firstInCategory {
		award += FirstInCategoryBonus
	}
	return award
}

// PreviewRange returns the XP range to display before first-in-category
// status is known: min is the nominal award, max includes the bonus. The
// upper bound is clamped so a single event never previews above PreviewCap.
func PreviewRange(difficulty int, category string) (min, max int) {
	min = Compute(difficulty, category, false)
	max = min + FirstInCategoryBonus
	if max > PreviewCap {
		max = PreviewCap
	}
	return min, max
}

// Preview returns the single bonus-inclusive value shown once
// first-in-category has been confirmed, subject to the same clamp.
func Preview(difficulty int, category string, firstInCategory bool) int {
	v := Compute(difficulty, category, firstInCategory)
	if v > PreviewCap {
		v = PreviewCap
	}
	return v
}

func baseForDifficulty(difficulty int) int {
	if base, ok := baseByDifficulty[difficulty]; ok {
		return base
	}
	return baseByDifficulty[DefaultDifficulty]
}

func multiplierForCategory(category string) float64 {
	if m, ok := multiplierByCategory[category]; ok {
		return m
	}
	return 1.0
}

// Calculator is the authoritative server-side rule evaluator. It reads the
// same rule tables as the preview helpers, so client preview and server
// award can never drift.
type Calculator struct{}

// NewCalculator creates a Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Evaluate implements the rule evaluator contract used by the modification
// recorder. The context is accepted for interface compatibility; evaluation
// itself is purely in-memory.
func (c *Calculator) Evaluate(_ context.Context, difficulty int, category string, firstInCategory bool) (int, error) {
	return Compute(difficulty, category, firstInCategory), nil
}
