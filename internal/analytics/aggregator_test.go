package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solospark/internal/model"
)

func response(questID, text string) model.QuestResponse {
	return model.QuestResponse{UserID: "u1", QuestID: questID, Response: text}
}

func TestAnalyzeSkipsUnresolvableQuests(t *testing.T) {
	quests := map[string]*model.Quest{
		"q1": {ID: "q1", Category: "growth"},
	}
	agg := Analyze([]model.QuestResponse{
		response("q1", "happy"),
		response("missing", "happy"),
	}, quests)

	assert.Equal(t, 1, agg.TotalResponses())
	assert.Equal(t, 1, agg.Mood.Positive)
}

func TestAnalyzeEmptyHistory(t *testing.T) {
	agg := Analyze(nil, nil)

	assert.True(t, agg.TraitDelta.IsZero())
	assert.Equal(t, MoodNeutral, agg.MoodTrend())
	assert.False(t, agg.HasMoodSignal())
	assert.Equal(t, []string{"Support"}, agg.RankedNeeds())
	assert.Zero(t, agg.TotalResponses())
}

func TestAnalyzeSumsTraitDeltas(t *testing.T) {
	quests := map[string]*model.Quest{
		"growth": {ID: "growth", Category: "growth"},
		"rel":    {ID: "rel", Category: "relationships"},
	}
	agg := Analyze([]model.QuestResponse{
		response("growth", "nothing in particular"), // +0.1 openness default
		response("growth", "nothing in particular"), // +0.1 openness default
		response("rel", "I help and listen"),        // +0.3 agreeableness, +0.2 openness
	}, quests)

	assert.InDelta(t, 0.4, agg.TraitDelta.Openness, 1e-9)
	assert.InDelta(t, 0.3, agg.TraitDelta.Agreeableness, 1e-9)
	assert.InDelta(t, 0, agg.TraitDelta.Neuroticism, 1e-9)
}

func TestMoodTrend(t *testing.T) {
	tests := []struct {
		name  string
		tally MoodTally
		want  Mood
	}{
		{"positive majority", MoodTally{Positive: 2, Negative: 1}, MoodPositive},
		{"negative majority", MoodTally{Positive: 1, Negative: 3}, MoodNegative},
		{"tie favors neutral", MoodTally{Positive: 2, Negative: 2, Neutral: 1}, MoodNeutral},
		{"all zero", MoodTally{}, MoodNeutral},
		{"neutral count is irrelevant", MoodTally{Positive: 1, Neutral: 10}, MoodPositive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tally.Trend())
		})
	}
}

func TestRankedNeedsOrdering(t *testing.T) {
	quests := map[string]*model.Quest{
		"q": {ID: "q", Category: "growth"},
	}
	agg := Analyze([]model.QuestResponse{
		response("q", "leave me alone"),       // Space
		response("q", "give me space"),        // Space
		response("q", "please listen"),        // Understanding
		response("q", "xyzzy"),                // default Support
		response("q", "someone who listens"),  // Understanding
		response("q", "I need quiet"),         // Space
	}, quests)

	require.Equal(t, []string{"Space", "Understanding", "Support"}, agg.RankedNeeds())
}

func TestRankedNeedsTieBreaksByFirstEncounter(t *testing.T) {
	quests := map[string]*model.Quest{
		"q": {ID: "q", Category: "growth"},
	}
	agg := Analyze([]model.QuestResponse{
		response("q", "please listen"), // Understanding first
		response("q", "I need space"),  // Space second
	}, quests)

	assert.Equal(t, []string{"Understanding", "Space"}, agg.RankedNeeds())
}

func TestAnalyzeCountsLowercasedCategories(t *testing.T) {
	quests := map[string]*model.Quest{
		"q1": {ID: "q1", Category: "Growth"},
		"q2": {ID: "q2", Category: "growth"},
	}
	agg := Analyze([]model.QuestResponse{
		response("q1", "a"),
		response("q2", "b"),
	}, quests)

	assert.Equal(t, map[string]int{"growth": 2}, agg.CategoryCounts)
	assert.Equal(t, 2, agg.TotalResponses())
}
