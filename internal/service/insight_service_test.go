package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"solospark/internal/model"
)

func newInsightService(f *analyticsFixture) *InsightService {
	return NewInsightService(
		f.users, f.traits, f.moods, f.responses, f.quests, nil, zap.NewNop(),
	)
}

func TestSummaryProfileNotFound(t *testing.T) {
	svc := newInsightService(newAnalyticsFixture())

	_, err := svc.Summary(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestSummaryDefaultsWithNoHistory(t *testing.T) {
	f := newAnalyticsFixture()
	f.addProfile("u1")
	svc := newInsightService(f)

	summary, err := svc.Summary(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalResponses)
	assert.Equal(t, model.DefaultTraitValues(), summary.AveragePersonality)
	assert.Equal(t, "Unknown", summary.MoodTrend)
	assert.Equal(t, 50, summary.CompatibilityScore)
	assert.Nil(t, summary.RecentActivity)
	assert.Empty(t, summary.ResponsePatterns)
}

func TestSummaryAggregatesHistory(t *testing.T) {
	f := newAnalyticsFixture(personalityQuest("q1"))
	f.addProfile("u1")
	f.users.profiles["u1"].CompatibilityScore = 64
	f.users.profiles["u1"].EmotionalProfile.EmotionalNeeds = []string{"Connection", "Support"}

	f.traits.snapshots = append(f.traits.snapshots,
		&model.TraitSnapshot{
			UserID:        "u1",
			Openness:      model.TraitScore{Value: 0.4, Weight: 1},
			Neuroticism:   model.TraitScore{Value: 0.5, Weight: 1},
			Agreeableness: model.TraitScore{Value: 0.6, Weight: 1},
			Timestamp:     time.Now(),
		},
		&model.TraitSnapshot{
			UserID:        "u1",
			Openness:      model.TraitScore{Value: 0.6, Weight: 1},
			Neuroticism:   model.TraitScore{Value: 0.5, Weight: 1},
			Agreeableness: model.TraitScore{Value: 0.8, Weight: 1},
			Timestamp:     time.Now(),
		},
	)
	f.moods.entries = append(f.moods.entries, &model.MoodEntry{
		UserID: "u1", Mood: "Positive", Timestamp: time.Now(),
	})
	f.addResponse("u1", "q1", "a night out with people")
	f.addResponse("u1", "q1", "quiet time alone")

	summary, err := newInsightService(f).Summary(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalResponses)
	assert.InDelta(t, 5.0, summary.AveragePersonality.Openness, 1e-9)
	assert.InDelta(t, 7.0, summary.AveragePersonality.Agreeableness, 1e-9)
	assert.Equal(t, "Positive", summary.MoodTrend)
	assert.Equal(t, []string{"Connection", "Support"}, summary.EmotionalNeeds)
	assert.Equal(t, 64, summary.CompatibilityScore)
	require.NotNil(t, summary.RecentActivity)
	assert.Equal(t, map[string]int{"personality": 2}, summary.ResponsePatterns)
}

func TestSummaryPatternsSkipUnresolvedQuests(t *testing.T) {
	f := newAnalyticsFixture(personalityQuest("q1"))
	f.addProfile("u1")
	f.addResponse("u1", "q1", "a night out with people")
	f.addResponse("u1", "vanished", "something else")

	summary, err := newInsightService(f).Summary(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalResponses)
	assert.Equal(t, map[string]int{"personality": 1}, summary.ResponsePatterns)
}
