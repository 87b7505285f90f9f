package analytics

import (
	"math"

	"solospark/internal/model"
)

// CompatibilityScore derives the 0-100 score from an aggregate. It is
// recomputed wholesale each run, never incremented.
func CompatibilityScore(agg *Aggregate) int {
	score := 50.0

	balance := math.Abs(agg.TraitDelta.Openness) +
		math.Abs(agg.TraitDelta.Agreeableness) -
		math.Abs(agg.TraitDelta.Neuroticism)
	score += balance * 5

	switch agg.MoodTrend() {
	case MoodPositive:
		score += 10
	case MoodNegative:
		score -= 10
	}

	if agg.TotalResponses() > 5 {
		score += 5
	}

	return int(math.Round(math.Max(0, math.Min(100, score))))
}

// ApplyDelta shifts current trait values by a delta, clamping each trait
// independently to [1,10].
func ApplyDelta(current model.TraitValues, d TraitDelta) model.TraitValues {
	return model.TraitValues{
		Openness:      clampTrait(current.Openness + d.Openness),
		Neuroticism:   clampTrait(current.Neuroticism + d.Neuroticism),
		Agreeableness: clampTrait(current.Agreeableness + d.Agreeableness),
	}
}

func clampTrait(v float64) float64 {
	return math.Max(1, math.Min(10, v))
}
