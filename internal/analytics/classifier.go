package analytics

import (
	"strings"

	"solospark/internal/model"
)

// Mood is a positive/negative/neutral classification.
type Mood string

const (
	MoodPositive Mood = "Positive"
	MoodNegative Mood = "Negative"
	MoodNeutral  Mood = "Neutral"
)

// TraitDelta is the personality shift attributed to one or more responses.
type TraitDelta struct {
	Openness      float64
	Neuroticism   float64
	Agreeableness float64
}

// IsZero reports whether no trait moved.
func (d TraitDelta) IsZero() bool {
	return d.Openness == 0 && d.Neuroticism == 0 && d.Agreeableness == 0
}

// ClassifyTraits derives the personality impact of a single response.
// Each trait fires at most once per response regardless of how many of
// its keywords match. A quest category with no table entry yields the
// default small openness bump.
func ClassifyTraits(quest *model.Quest, response string) TraitDelta {
	impact, ok := ParseCategory(quest.Category).TraitImpact()
	if !ok {
		return TraitDelta{Openness: 0.1}
	}

	lower := strings.ToLower(response)
	var d TraitDelta
	if containsAny(lower, impact.Agreeableness) {
		d.Agreeableness += 0.3
	}
	if containsAny(lower, impact.Openness) {
		d.Openness += 0.2
	}
	if containsAny(lower, impact.Neuroticism) {
		d.Neuroticism -= 0.2
	}
	return d
}

// ClassifyMood derives the mood of a single response. Response keywords
// are scanned first (positive before negative, first hit wins); if none
// match, the quest category itself is checked for mood hints.
func ClassifyMood(quest *model.Quest, response string) Mood {
	lower := strings.ToLower(response)

	for _, kw := range positiveKeywords {
		if strings.Contains(lower, kw) {
			return MoodPositive
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(lower, kw) {
			return MoodNegative
		}
	}

	category := strings.ToLower(quest.Category)
	if strings.Contains(category, "stress") ||
		strings.Contains(category, "conflict") ||
		strings.Contains(category, "problem") {
		return MoodNegative
	}
	if strings.Contains(category, "joy") ||
		strings.Contains(category, "success") ||
		strings.Contains(category, "achievement") {
		return MoodPositive
	}

	return MoodNeutral
}

// ClassifyNeed derives the emotional need expressed by a response. Need
// categories are scanned in table order; the first with any keyword hit
// wins. No match yields DefaultNeed.
func ClassifyNeed(response string) string {
	lower := strings.ToLower(response)
	for _, nc := range needCategories {
		if containsAny(lower, nc.keywords) {
			return nc.label
		}
	}
	return DefaultNeed
}
