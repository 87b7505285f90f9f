package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solospark/internal/model"
)

func TestCompatibilityScoreWorkedExample(t *testing.T) {
	// 6 responses, 4 positive / 1 negative / 1 neutral, net deltas
	// +0.5 / -0.1 / +0.2 -> 50 + 5*(0.5+0.2-0.1) + 10 + 5 = 68.
	agg := &Aggregate{
		TraitDelta: TraitDelta{Openness: 0.5, Neuroticism: -0.1, Agreeableness: 0.2},
		Mood:       MoodTally{Positive: 4, Negative: 1, Neutral: 1},
		CategoryCounts: map[string]int{
			"growth": 4,
			"social": 2,
		},
	}
	assert.Equal(t, 68, CompatibilityScore(agg))
}

func TestCompatibilityScoreBaseline(t *testing.T) {
	assert.Equal(t, 50, CompatibilityScore(&Aggregate{}))
}

func TestCompatibilityScoreNegativeMood(t *testing.T) {
	agg := &Aggregate{Mood: MoodTally{Negative: 1}}
	assert.Equal(t, 40, CompatibilityScore(agg))
}

func TestCompatibilityScoreConsistencyBonusRequiresMoreThanFive(t *testing.T) {
	agg := &Aggregate{CategoryCounts: map[string]int{"growth": 5}}
	assert.Equal(t, 50, CompatibilityScore(agg))

	agg.CategoryCounts["growth"] = 6
	assert.Equal(t, 55, CompatibilityScore(agg))
}

func TestCompatibilityScoreClamped(t *testing.T) {
	high := &Aggregate{
		TraitDelta: TraitDelta{Openness: 30, Agreeableness: 30},
		Mood:       MoodTally{Positive: 1},
	}
	assert.Equal(t, 100, CompatibilityScore(high))

	low := &Aggregate{
		TraitDelta: TraitDelta{Neuroticism: -30},
		Mood:       MoodTally{Negative: 1},
	}
	assert.Equal(t, 0, CompatibilityScore(low))
}

func TestApplyDeltaClampsToTraitRange(t *testing.T) {
	current := model.TraitValues{Openness: 9.9, Neuroticism: 1.1, Agreeableness: 5}
	next := ApplyDelta(current, TraitDelta{Openness: 5, Neuroticism: -5, Agreeableness: 0.3})

	assert.Equal(t, 10.0, next.Openness)
	assert.Equal(t, 1.0, next.Neuroticism)
	assert.InDelta(t, 5.3, next.Agreeableness, 1e-9)
}

func TestApplyDeltaFromDefaults(t *testing.T) {
	next := ApplyDelta(model.DefaultTraitValues(), TraitDelta{Openness: 0.1})
	assert.InDelta(t, 5.1, next.Openness, 1e-9)
	assert.Equal(t, 5.0, next.Neuroticism)
	assert.Equal(t, 5.0, next.Agreeableness)
}
