package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"solospark/internal/analytics"
	"solospark/internal/cache"
	"solospark/internal/model"
	"solospark/internal/repository"
)

// ErrProfileNotFound means the user has no profile document.
var ErrProfileNotFound = errors.New("user profile not found")

const moodHistoryNote = "Auto-updated based on quest response analysis"

// AnalyticsService runs the quest-response analysis and writes derived
// values back into the user's records.
type AnalyticsService struct {
	users       repository.UserRepo
	traits      repository.TraitRepo
	moods       repository.MoodRepo
	responses   repository.ResponseRepo
	quests      repository.QuestRepo
	metrics     repository.MetricsRepo
	leaderboard cache.LeaderboardCache
	broadcaster Broadcaster
	log         *zap.Logger
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	users repository.UserRepo,
	traits repository.TraitRepo,
	moods repository.MoodRepo,
	responses repository.ResponseRepo,
	quests repository.QuestRepo,
	metrics repository.MetricsRepo,
	leaderboard cache.LeaderboardCache,
	log *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		users:       users,
		traits:      traits,
		moods:       moods,
		responses:   responses,
		quests:      quests,
		metrics:     metrics,
		leaderboard: leaderboard,
		log:         log,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events.
func (s *AnalyticsService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// AnalyzeAndUpdateUserSchema folds the user's full response history
// through the classifier, derives trait deltas, mood trend, emotional
// needs and the compatibility score, and persists whichever of them
// changed. The returned outcome says which fields were written.
//
// Writes are sequential and independently awaited; there is no
// cross-write transaction, so a failure mid-sequence can leave a subset
// of fields updated.
func (s *AnalyticsService) AnalyzeAndUpdateUserSchema(ctx context.Context, userID string) (*model.AnalysisOutcome, error) {
	var (
		profile *model.UserProfile
		history []model.QuestResponse
		summary *model.MetricsSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.users.GetByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.responses.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = s.metrics.GetSummary(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("analysis fetch failed",
			zap.String("userId", userID), zap.Error(err))
		return nil, fmt.Errorf("fetch analysis inputs: %w", err)
	}

	if profile == nil {
		s.log.Warn("analysis aborted, profile missing", zap.String("userId", userID))
		return nil, ErrProfileNotFound
	}

	quests, err := s.resolveQuests(ctx, history)
	if err != nil {
		s.log.Error("analysis quest resolution failed",
			zap.String("userId", userID), zap.Error(err))
		return nil, fmt.Errorf("resolve quests: %w", err)
	}

	agg := analytics.Analyze(history, quests)
	outcome := &model.AnalysisOutcome{}

	if !agg.TraitDelta.IsZero() {
		if err := s.updateTraits(ctx, userID, agg.TraitDelta); err != nil {
			return outcome, err
		}
		outcome.PersonalityUpdated = true
	}

	trend := agg.MoodTrend()
	storedMood := ""
	if summary != nil {
		storedMood = summary.EmotionalProfileMetrics.CurrentMood
	}
	// Re-fires on any positive/negative evidence even when the trend
	// label is unchanged, re-confirming the mood each run with signal.
	if string(trend) != storedMood || agg.HasMoodSignal() {
		if err := s.updateMood(ctx, userID, summary, trend); err != nil {
			return outcome, err
		}
		outcome.MoodUpdated = true
	}

	ranked := agg.RankedNeeds()
	if !sameNeedSet(profile.EmotionalProfile.EmotionalNeeds, ranked) {
		if err := s.updateNeeds(ctx, userID, ranked); err != nil {
			return outcome, err
		}
		outcome.EmotionalNeedsUpdated = true
	}

	score := analytics.CompatibilityScore(agg)
	if score != profile.CompatibilityScore {
		if err := s.updateScore(ctx, userID, score); err != nil {
			return outcome, err
		}
		outcome.CompatibilityScoreUpdated = true
	}

	if outcome.Any() && s.broadcaster != nil {
		s.broadcaster.BroadcastToUser(userID, "profile_updated", outcome)
	}

	s.log.Info("user schema analysis completed",
		zap.String("userId", userID),
		zap.Bool("personalityUpdated", outcome.PersonalityUpdated),
		zap.Bool("moodUpdated", outcome.MoodUpdated),
		zap.Bool("emotionalNeedsUpdated", outcome.EmotionalNeedsUpdated),
		zap.Bool("compatibilityScoreUpdated", outcome.CompatibilityScoreUpdated))

	return outcome, nil
}

// resolveQuests maps the history's quest ids to quest documents.
// Unresolvable ids are simply absent; the aggregator skips them.
func (s *AnalyticsService) resolveQuests(ctx context.Context, history []model.QuestResponse) (map[string]*model.Quest, error) {
	seen := make(map[string]bool, len(history))
	ids := make([]string, 0, len(history))
	for _, resp := range history {
		if !seen[resp.QuestID] {
			seen[resp.QuestID] = true
			ids = append(ids, resp.QuestID)
		}
	}
	return s.quests.GetByIDs(ctx, ids)
}

// updateTraits appends a new snapshot shifted from the latest stored
// one (default 5/5/5), each trait clamped to [1,10]. Deltas apply to
// the current stored value, not a replay of history, so repeated runs
// with the same nonzero delta keep shifting the trait.
func (s *AnalyticsService) updateTraits(ctx context.Context, userID string, delta analytics.TraitDelta) error {
	latest, err := s.traits.Latest(ctx, userID)
	if err != nil {
		s.log.Error("fetch latest trait snapshot failed",
			zap.String("userId", userID), zap.Error(err))
		return fmt.Errorf("fetch latest trait snapshot: %w", err)
	}

	current := model.DefaultTraitValues()
	if latest != nil {
		current = latest.Values()
	}
	next := analytics.ApplyDelta(current, delta)

	snapshot := &model.TraitSnapshot{
		UserID:        userID,
		Openness:      model.TraitScore{Value: next.Openness / 10, Weight: 1},
		Neuroticism:   model.TraitScore{Value: next.Neuroticism / 10, Weight: 1},
		Agreeableness: model.TraitScore{Value: next.Agreeableness / 10, Weight: 1},
	}
	if err := s.traits.Append(ctx, snapshot); err != nil {
		s.log.Error("append trait snapshot failed",
			zap.String("userId", userID), zap.Error(err))
		return fmt.Errorf("append trait snapshot: %w", err)
	}
	return nil
}

// updateMood upserts the metrics summary's current mood and appends a
// mood-history entry with a system note.
func (s *AnalyticsService) updateMood(ctx context.Context, userID string, summary *model.MetricsSummary, trend analytics.Mood) error {
	if summary == nil {
		fresh := model.NewMetricsSummary(userID)
		fresh.EmotionalProfileMetrics.CurrentMood = string(trend)
		if err := s.metrics.UpsertSummary(ctx, fresh); err != nil {
			s.log.Error("create metrics summary failed",
				zap.String("userId", userID), zap.Error(err))
			return fmt.Errorf("create metrics summary: %w", err)
		}
	} else {
		if err := s.metrics.PatchMood(ctx, userID, string(trend)); err != nil {
			s.log.Error("patch metrics mood failed",
				zap.String("userId", userID), zap.Error(err))
			return fmt.Errorf("patch metrics mood: %w", err)
		}
	}

	entry := &model.MoodEntry{
		UserID: userID,
		Mood:   string(trend),
		Notes:  moodHistoryNote,
	}
	if err := s.moods.Append(ctx, entry); err != nil {
		s.log.Error("append mood history failed",
			zap.String("userId", userID), zap.Error(err))
		return fmt.Errorf("append mood history: %w", err)
	}
	return nil
}

func (s *AnalyticsService) updateNeeds(ctx context.Context, userID string, ranked []string) error {
	err := s.users.Patch(ctx, userID, map[string]interface{}{
		"emotionalProfile.emotionalNeeds": ranked,
	})
	if err != nil {
		s.log.Error("update emotional needs failed",
			zap.String("userId", userID), zap.Error(err))
		return fmt.Errorf("update emotional needs: %w", err)
	}
	return nil
}

func (s *AnalyticsService) updateScore(ctx context.Context, userID string, score int) error {
	err := s.users.Patch(ctx, userID, map[string]interface{}{
		"compatibilityScore": score,
	})
	if err != nil {
		s.log.Error("update compatibility score failed",
			zap.String("userId", userID), zap.Error(err))
		return fmt.Errorf("update compatibility score: %w", err)
	}
	if s.leaderboard != nil {
		if err := s.leaderboard.UpdateScore(ctx, userID, score); err != nil {
			s.log.Warn("leaderboard update failed",
				zap.String("userId", userID), zap.Error(err))
		}
	}
	return nil
}

// sameNeedSet compares two need lists as sets.
func sameNeedSet(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	set := make(map[string]bool, len(a))
	for _, n := range a {
		set[n] = true
	}
	for _, n := range b {
		if !set[n] {
			return false
		}
	}
	other := make(map[string]bool, len(b))
	for _, n := range b {
		other[n] = true
	}
	for _, n := range a {
		if !other[n] {
			return false
		}
	}
	return true
}
