package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"solospark/internal/cache"
	"solospark/internal/model"
	"solospark/internal/repository"
)

// ErrQuestNotFound means the referenced quest does not exist.
var ErrQuestNotFound = errors.New("quest not found")

// QuestService handles the quest catalog and response submission.
type QuestService struct {
	quests    repository.QuestRepo
	responses repository.ResponseRepo
	users     repository.UserRepo
	metrics   repository.MetricsRepo
	cache     cache.QuestCache
	analytics *AnalyticsService
	log       *zap.Logger
}

// NewQuestService creates a new quest service.
func NewQuestService(
	quests repository.QuestRepo,
	responses repository.ResponseRepo,
	users repository.UserRepo,
	metrics repository.MetricsRepo,
	questCache cache.QuestCache,
	analytics *AnalyticsService,
	log *zap.Logger,
) *QuestService {
	return &QuestService{
		quests:    quests,
		responses: responses,
		users:     users,
		metrics:   metrics,
		cache:     questCache,
		analytics: analytics,
		log:       log,
	}
}

// SaveQuest validates and stores a new quest.
func (s *QuestService) SaveQuest(ctx context.Context, quest *model.Quest) (string, error) {
	if quest.PointValue <= 0 {
		return "", fmt.Errorf("point value must be a positive number")
	}
	nonEmpty := 0
	for _, opt := range quest.Options {
		if strings.TrimSpace(opt) != "" {
			nonEmpty++
		}
	}
	if nonEmpty < 2 {
		return "", fmt.Errorf("at least two non-empty options are required")
	}

	if err := s.quests.Create(ctx, quest); err != nil {
		s.log.Error("save quest failed", zap.Error(err))
		return "", fmt.Errorf("save quest: %w", err)
	}
	return quest.ID, nil
}

// GetQuest resolves a quest through the cache, nil if absent.
func (s *QuestService) GetQuest(ctx context.Context, questID string) (*model.Quest, error) {
	if s.cache != nil {
		if quest, err := s.cache.Get(ctx, questID); err == nil && quest != nil {
			return quest, nil
		}
	}

	quest, err := s.quests.GetByID(ctx, questID)
	if err != nil {
		s.log.Error("fetch quest failed", zap.String("questId", questID), zap.Error(err))
		return nil, fmt.Errorf("fetch quest: %w", err)
	}
	if quest != nil && s.cache != nil {
		if err := s.cache.Set(ctx, quest); err != nil {
			s.log.Warn("quest cache set failed", zap.String("questId", questID), zap.Error(err))
		}
	}
	return quest, nil
}

// ListQuests returns the full catalog, newest first.
func (s *QuestService) ListQuests(ctx context.Context) ([]*model.Quest, error) {
	return s.quests.List(ctx)
}

// SubmitResponse appends an immutable quest response, credits the
// quest's points, bumps engagement metrics, then runs the full analysis
// and returns its outcome.
func (s *QuestService) SubmitResponse(ctx context.Context, userID, questID, responseText string) (*model.AnalysisOutcome, error) {
	quest, err := s.GetQuest(ctx, questID)
	if err != nil {
		return nil, err
	}
	if quest == nil {
		return nil, ErrQuestNotFound
	}

	response := &model.QuestResponse{
		UserID:   userID,
		QuestID:  questID,
		Response: responseText,
	}
	if err := s.responses.Append(ctx, response); err != nil {
		s.log.Error("append quest response failed",
			zap.String("userId", userID), zap.String("questId", questID), zap.Error(err))
		return nil, fmt.Errorf("append quest response: %w", err)
	}

	if err := s.users.IncrementPoints(ctx, userID, quest.PointValue); err != nil {
		s.log.Error("increment points failed",
			zap.String("userId", userID), zap.Error(err))
		return nil, fmt.Errorf("increment points: %w", err)
	}

	if err := s.recordEngagement(ctx, userID, questID, quest.Category); err != nil {
		return nil, err
	}

	if err := s.quests.IncrementResponseCount(ctx, questID); err != nil {
		s.log.Warn("increment response count failed",
			zap.String("questId", questID), zap.Error(err))
	}

	outcome, err := s.analytics.AnalyzeAndUpdateUserSchema(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.log.Info("quest response saved",
		zap.String("userId", userID),
		zap.String("questId", questID),
		zap.Int("pointsEarned", quest.PointValue))
	return outcome, nil
}

// recordEngagement merges the submission into the metrics summary,
// creating it with zeroed defaults on first write.
func (s *QuestService) recordEngagement(ctx context.Context, userID, questID, category string) error {
	summary, err := s.metrics.GetSummary(ctx, userID)
	if err != nil {
		s.log.Error("fetch metrics summary failed",
			zap.String("userId", userID), zap.Error(err))
		return fmt.Errorf("fetch metrics summary: %w", err)
	}
	if summary == nil {
		summary = model.NewMetricsSummary(userID)
	}
	if summary.CategoryAffinity == nil {
		summary.CategoryAffinity = make(map[string]int)
	}

	summary.EngagementProfile.InteractionFrequency++
	summary.EngagementProfile.CompletedQuests = append(summary.EngagementProfile.CompletedQuests, questID)
	summary.CategoryAffinity[strings.ToLower(category)]++

	if err := s.metrics.UpsertSummary(ctx, summary); err != nil {
		s.log.Error("upsert metrics summary failed",
			zap.String("userId", userID), zap.Error(err))
		return fmt.Errorf("upsert metrics summary: %w", err)
	}
	return nil
}
