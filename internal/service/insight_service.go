package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"solospark/internal/cache"
	"solospark/internal/model"
	"solospark/internal/repository"
)

const recentResponseWindow = 10

// InsightService assembles the read-only analytics summary served to the
// profile and insight screens.
type InsightService struct {
	users     repository.UserRepo
	traits    repository.TraitRepo
	moods     repository.MoodRepo
	responses repository.ResponseRepo
	quests    repository.QuestRepo
	cache     cache.InsightCache
	log       *zap.Logger
}

// NewInsightService creates a new insight service.
func NewInsightService(
	users repository.UserRepo,
	traits repository.TraitRepo,
	moods repository.MoodRepo,
	responses repository.ResponseRepo,
	quests repository.QuestRepo,
	insightCache cache.InsightCache,
	log *zap.Logger,
) *InsightService {
	return &InsightService{
		users:     users,
		traits:    traits,
		moods:     moods,
		responses: responses,
		quests:    quests,
		cache:     insightCache,
		log:       log,
	}
}

// Summary builds the aggregated view from the stored histories. Results are
// cached in Redis and served stale until the TTL expires.
func (s *InsightService) Summary(ctx context.Context, userID string) (*model.AnalyticsSummary, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, userID); err == nil && cached != nil {
			return cached, nil
		}
	}

	var (
		profile    *model.UserProfile
		snapshots  []*model.TraitSnapshot
		latestMood *model.MoodEntry
		history    []model.QuestResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.users.GetByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snapshots, err = s.traits.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		latestMood, err = s.moods.Latest(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.responses.ListByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("insight fetch failed", zap.String("userId", userID), zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	summary := &model.AnalyticsSummary{
		UserID:             userID,
		TotalResponses:     len(history),
		AveragePersonality: averageTraits(snapshots),
		MoodTrend:          "Unknown",
		EmotionalNeeds:     profile.EmotionalProfile.EmotionalNeeds,
		CompatibilityScore: profile.CompatibilityScore,
		GeneratedAt:        time.Now(),
	}
	if summary.CompatibilityScore == 0 {
		summary.CompatibilityScore = 50
	}
	if latestMood != nil {
		summary.MoodTrend = latestMood.Mood
	}
	if len(history) > 0 {
		summary.RecentActivity = &history[0].Timestamp
	}

	patterns, err := s.responsePatterns(ctx, history)
	if err != nil {
		s.log.Error("response pattern fetch failed", zap.String("userId", userID), zap.Error(err))
		return nil, err
	}
	summary.ResponsePatterns = patterns

	if s.cache != nil {
		if err := s.cache.Set(ctx, summary); err != nil {
			s.log.Warn("insight cache set failed", zap.String("userId", userID), zap.Error(err))
		}
	}
	return summary, nil
}

// responsePatterns tallies lowercased quest categories over the most recent
// responses. Responses whose quest no longer resolves are skipped.
func (s *InsightService) responsePatterns(ctx context.Context, history []model.QuestResponse) (map[string]int, error) {
	recent := history
	if len(recent) > recentResponseWindow {
		recent = recent[:recentResponseWindow]
	}

	seen := make(map[string]bool)
	var ids []string
	for _, response := range recent {
		if !seen[response.QuestID] {
			seen[response.QuestID] = true
			ids = append(ids, response.QuestID)
		}
	}

	patterns := make(map[string]int)
	if len(ids) == 0 {
		return patterns, nil
	}

	quests, err := s.quests.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, response := range recent {
		if quest, ok := quests[response.QuestID]; ok {
			patterns[strings.ToLower(quest.Category)]++
		}
	}
	return patterns, nil
}

// averageTraits averages the 1-10 scale values across every stored
// snapshot, falling back to the neutral baseline with none.
func averageTraits(snapshots []*model.TraitSnapshot) model.TraitValues {
	if len(snapshots) == 0 {
		return model.DefaultTraitValues()
	}
	var avg model.TraitValues
	for _, snapshot := range snapshots {
		values := snapshot.Values()
		avg.Openness += values.Openness
		avg.Neuroticism += values.Neuroticism
		avg.Agreeableness += values.Agreeableness
	}
	n := float64(len(snapshots))
	avg.Openness /= n
	avg.Neuroticism /= n
	avg.Agreeableness /= n
	return avg
}
