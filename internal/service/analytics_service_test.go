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

type analyticsFixture struct {
	users       *fakeUserRepo
	traits      *fakeTraitRepo
	moods       *fakeMoodRepo
	responses   *fakeResponseRepo
	quests      *fakeQuestRepo
	metrics     *fakeMetricsRepo
	leaderboard *fakeLeaderboard
	broadcaster *fakeBroadcaster
	svc         *AnalyticsService
}

func newAnalyticsFixture(quests ...*model.Quest) *analyticsFixture {
	f := &analyticsFixture{
		users:       newFakeUserRepo(),
		traits:      &fakeTraitRepo{},
		moods:       &fakeMoodRepo{},
		responses:   &fakeResponseRepo{},
		quests:      newFakeQuestRepo(quests...),
		metrics:     newFakeMetricsRepo(),
		leaderboard: newFakeLeaderboard(),
		broadcaster: &fakeBroadcaster{},
	}
	f.svc = NewAnalyticsService(
		f.users, f.traits, f.moods, f.responses, f.quests, f.metrics,
		f.leaderboard, zap.NewNop(),
	)
	f.svc.SetBroadcaster(f.broadcaster)
	return f
}

func (f *analyticsFixture) addProfile(userID string) {
	f.users.profiles[userID] = &model.UserProfile{
		ID:               userID,
		Email:            userID + "@example.com",
		ProfileCreatedAt: time.Now(),
	}
}

func (f *analyticsFixture) addResponse(userID, questID, text string) {
	f.responses.entries = append(f.responses.entries, model.QuestResponse{
		UserID:    userID,
		QuestID:   questID,
		Response:  text,
		Timestamp: time.Now(),
	})
}

func personalityQuest(id string) *model.Quest {
	return &model.Quest{
		ID:           id,
		QuestionText: "How do you recharge after a long week?",
		Category:     "Personality",
		Options:      []string{"With friends", "On my own"},
		PointValue:   10,
	}
}

func TestAnalyzeProfileNotFound(t *testing.T) {
	f := newAnalyticsFixture()

	outcome, err := f.svc.AnalyzeAndUpdateUserSchema(context.Background(), "ghost")

	require.ErrorIs(t, err, ErrProfileNotFound)
	assert.Nil(t, outcome)
}

func TestAnalyzeUpdatesEverythingOnFirstRun(t *testing.T) {
	f := newAnalyticsFixture(personalityQuest("q1"))
	f.addProfile("u1")
	f.addResponse("u1", "q1", "I love creative art with people")

	outcome, err := f.svc.AnalyzeAndUpdateUserSchema(context.Background(), "u1")
	require.NoError(t, err)

	assert.True(t, outcome.PersonalityUpdated)
	assert.True(t, outcome.MoodUpdated)
	assert.True(t, outcome.EmotionalNeedsUpdated)
	assert.True(t, outcome.CompatibilityScoreUpdated)

	// 50 + (0.2 + 0.3) * 5 + 10 for a positive trend, rounded.
	profile := f.users.profiles["u1"]
	assert.Equal(t, 63, profile.CompatibilityScore)
	assert.Equal(t, []string{"Connection"}, profile.EmotionalProfile.EmotionalNeeds)
	assert.Equal(t, 63, f.leaderboard.scores["u1"])

	require.Len(t, f.traits.snapshots, 1)
	snapshot := f.traits.snapshots[0]
	assert.InDelta(t, 0.52, snapshot.Openness.Value, 1e-9)
	assert.InDelta(t, 0.53, snapshot.Agreeableness.Value, 1e-9)
	assert.InDelta(t, 0.5, snapshot.Neuroticism.Value, 1e-9)
	assert.Equal(t, 1.0, snapshot.Openness.Weight)

	summary := f.metrics.summaries["u1"]
	require.NotNil(t, summary)
	assert.Equal(t, "Positive", summary.EmotionalProfileMetrics.CurrentMood)

	require.Len(t, f.moods.entries, 1)
	assert.Equal(t, "Positive", f.moods.entries[0].Mood)
	assert.Equal(t, moodHistoryNote, f.moods.entries[0].Notes)

	require.Len(t, f.broadcaster.events, 1)
	assert.Equal(t, "u1", f.broadcaster.events[0].userID)
	assert.Equal(t, "profile_updated", f.broadcaster.events[0].msgType)
}

func TestAnalyzeAppendsTraitSnapshotPerRun(t *testing.T) {
	f := newAnalyticsFixture(personalityQuest("q1"))
	f.addProfile("u1")
	f.addResponse("u1", "q1", "I love creative art with people")

	ctx := context.Background()
	_, err := f.svc.AnalyzeAndUpdateUserSchema(ctx, "u1")
	require.NoError(t, err)
	outcome, err := f.svc.AnalyzeAndUpdateUserSchema(ctx, "u1")
	require.NoError(t, err)

	// The nonzero delta re-applies to the latest stored snapshot,
	// so each run shifts the traits again.
	assert.True(t, outcome.PersonalityUpdated)
	require.Len(t, f.traits.snapshots, 2)
	assert.InDelta(t, 0.54, f.traits.snapshots[1].Openness.Value, 1e-9)
	assert.InDelta(t, 0.56, f.traits.snapshots[1].Agreeableness.Value, 1e-9)
}

func TestAnalyzeMoodRefiresOnSignal(t *testing.T) {
	f := newAnalyticsFixture(personalityQuest("q1"))
	f.addProfile("u1")
	f.addResponse("u1", "q1", "I love creative art with people")

	ctx := context.Background()
	_, err := f.svc.AnalyzeAndUpdateUserSchema(ctx, "u1")
	require.NoError(t, err)

	require.Equal(t, "Positive", f.metrics.summaries["u1"].EmotionalProfileMetrics.CurrentMood)

	outcome, err := f.svc.AnalyzeAndUpdateUserSchema(ctx, "u1")
	require.NoError(t, err)

	// The stored mood already matches the trend, but positive evidence
	// in the history re-confirms it and appends another entry.
	assert.True(t, outcome.MoodUpdated)
	assert.Len(t, f.moods.entries, 2)
}

func TestAnalyzeScoreAndNeedsStableAcrossRuns(t *testing.T) {
	f := newAnalyticsFixture(personalityQuest("q1"))
	f.addProfile("u1")
	f.addResponse("u1", "q1", "I love creative art with people")

	ctx := context.Background()
	_, err := f.svc.AnalyzeAndUpdateUserSchema(ctx, "u1")
	require.NoError(t, err)
	outcome, err := f.svc.AnalyzeAndUpdateUserSchema(ctx, "u1")
	require.NoError(t, err)

	assert.False(t, outcome.CompatibilityScoreUpdated)
	assert.False(t, outcome.EmotionalNeedsUpdated)
	assert.Equal(t, 63, f.users.profiles["u1"].CompatibilityScore)
}

func TestAnalyzeSkipsUnresolvedQuests(t *testing.T) {
	f := newAnalyticsFixture()
	f.addProfile("u1")
	f.addResponse("u1", "missing-quest", "I love creative art with people")

	outcome, err := f.svc.AnalyzeAndUpdateUserSchema(context.Background(), "u1")
	require.NoError(t, err)

	assert.False(t, outcome.PersonalityUpdated)
	assert.Empty(t, f.traits.snapshots)
	assert.Equal(t, 50, f.users.profiles["u1"].CompatibilityScore)
	assert.Equal(t, []string{"Support"}, f.users.profiles["u1"].EmotionalProfile.EmotionalNeeds)
	assert.Equal(t, "Neutral", f.metrics.summaries["u1"].EmotionalProfileMetrics.CurrentMood)
}

func TestAnalyzeClampsTraitsAtUpperBound(t *testing.T) {
	f := newAnalyticsFixture(personalityQuest("q1"))
	f.addProfile("u1")
	f.addResponse("u1", "q1", "I love creative art with people")
	f.traits.snapshots = append(f.traits.snapshots, &model.TraitSnapshot{
		UserID:        "u1",
		Openness:      model.TraitScore{Value: 0.5, Weight: 1},
		Neuroticism:   model.TraitScore{Value: 0.5, Weight: 1},
		Agreeableness: model.TraitScore{Value: 0.99, Weight: 1},
		Timestamp:     time.Now(),
	})

	_, err := f.svc.AnalyzeAndUpdateUserSchema(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, f.traits.snapshots, 2)
	assert.InDelta(t, 1.0, f.traits.snapshots[1].Agreeableness.Value, 1e-9)
}
