package analytics

import (
	"sort"
	"strings"

	"solospark/internal/model"
)

// MoodTally counts per-response mood classifications.
type MoodTally struct {
	Positive int
	Negative int
	Neutral  int
}

// Trend reduces the tally to a single label. Ties favor Neutral.
func (t MoodTally) Trend() Mood {
	switch {
	case t.Positive > t.Negative:
		return MoodPositive
	case t.Negative > t.Positive:
		return MoodNegative
	default:
		return MoodNeutral
	}
}

// Aggregate is the fold of a user's full response history through the
// classifier.
type Aggregate struct {
	TraitDelta     TraitDelta
	Mood           MoodTally
	NeedCounts     map[string]int
	CategoryCounts map[string]int

	needOrder []string // first-encounter order, breaks ranking ties
}

// Analyze folds every response whose quest resolves. Responses with an
// unresolvable quest id contribute nothing; that is a tolerance policy,
// not an error.
func Analyze(responses []model.QuestResponse, quests map[string]*model.Quest) *Aggregate {
	agg := &Aggregate{
		NeedCounts:     make(map[string]int),
		CategoryCounts: make(map[string]int),
	}

	for _, resp := range responses {
		quest, ok := quests[resp.QuestID]
		if !ok || quest == nil {
			continue
		}

		d := ClassifyTraits(quest, resp.Response)
		agg.TraitDelta.Openness += d.Openness
		agg.TraitDelta.Neuroticism += d.Neuroticism
		agg.TraitDelta.Agreeableness += d.Agreeableness

		switch ClassifyMood(quest, resp.Response) {
		case MoodPositive:
			agg.Mood.Positive++
		case MoodNegative:
			agg.Mood.Negative++
		default:
			agg.Mood.Neutral++
		}

		need := ClassifyNeed(resp.Response)
		if _, seen := agg.NeedCounts[need]; !seen {
			agg.needOrder = append(agg.needOrder, need)
		}
		agg.NeedCounts[need]++

		agg.CategoryCounts[strings.ToLower(quest.Category)]++
	}

	return agg
}

// MoodTrend is the net mood label for the whole history.
func (a *Aggregate) MoodTrend() Mood {
	return a.Mood.Trend()
}

// HasMoodSignal reports whether any response carried positive or negative
// evidence this run.
func (a *Aggregate) HasMoodSignal() bool {
	return a.Mood.Positive > 0 || a.Mood.Negative > 0
}

// RankedNeeds returns every need label seen, sorted descending by
// frequency with ties broken by first encounter. Never empty: with no
// matches at all it is just the default need.
func (a *Aggregate) RankedNeeds() []string {
	if len(a.NeedCounts) == 0 {
		return []string{DefaultNeed}
	}
	ranked := make([]string, len(a.needOrder))
	copy(ranked, a.needOrder)
	sort.SliceStable(ranked, func(i, j int) bool {
		return a.NeedCounts[ranked[i]] > a.NeedCounts[ranked[j]]
	})
	return ranked
}

// TotalResponses counts the responses that resolved to a quest.
func (a *Aggregate) TotalResponses() int {
	total := 0
	for _, n := range a.CategoryCounts {
		total += n
	}
	return total
}
