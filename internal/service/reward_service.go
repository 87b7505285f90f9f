package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"solospark/internal/model"
	"solospark/internal/repository"
)

// ErrRewardNotFound means the referenced reward does not exist.
var ErrRewardNotFound = errors.New("reward not found")

// RewardService manages the shop inventory.
type RewardService struct {
	rewards repository.RewardRepo
	log     *zap.Logger
}

// NewRewardService creates a new reward service.
func NewRewardService(rewards repository.RewardRepo, log *zap.Logger) *RewardService {
	return &RewardService{rewards: rewards, log: log}
}

// CreateReward validates and stores a new reward.
func (s *RewardService) CreateReward(ctx context.Context, reward *model.Reward) (string, error) {
	if strings.TrimSpace(reward.Name) == "" {
		return "", fmt.Errorf("name is required")
	}
	if reward.Cost <= 0 {
		return "", fmt.Errorf("cost must be a positive number")
	}

	if err := s.rewards.Create(ctx, reward); err != nil {
		s.log.Error("create reward failed", zap.Error(err))
		return "", fmt.Errorf("create reward: %w", err)
	}
	return reward.ID, nil
}

// ListRewards returns the full inventory.
func (s *RewardService) ListRewards(ctx context.Context) ([]*model.Reward, error) {
	return s.rewards.List(ctx)
}

// UpdateReward patches the mutable reward fields.
func (s *RewardService) UpdateReward(ctx context.Context, rewardID string, fields map[string]interface{}) (*model.Reward, error) {
	existing, err := s.rewards.GetByID(ctx, rewardID)
	if err != nil {
		return nil, fmt.Errorf("fetch reward: %w", err)
	}
	if existing == nil {
		return nil, ErrRewardNotFound
	}

	if cost, ok := fields["cost"]; ok {
		if c, ok := cost.(float64); ok && c <= 0 {
			return nil, fmt.Errorf("cost must be a positive number")
		}
	}

	if err := s.rewards.Patch(ctx, rewardID, fields); err != nil {
		s.log.Error("patch reward failed", zap.String("rewardId", rewardID), zap.Error(err))
		return nil, fmt.Errorf("patch reward: %w", err)
	}
	return s.rewards.GetByID(ctx, rewardID)
}

// DeleteReward removes a reward from the inventory.
func (s *RewardService) DeleteReward(ctx context.Context, rewardID string) error {
	existing, err := s.rewards.GetByID(ctx, rewardID)
	if err != nil {
		return fmt.Errorf("fetch reward: %w", err)
	}
	if existing == nil {
		return ErrRewardNotFound
	}
	if err := s.rewards.Delete(ctx, rewardID); err != nil {
		s.log.Error("delete reward failed", zap.String("rewardId", rewardID), zap.Error(err))
		return fmt.Errorf("delete reward: %w", err)
	}
	return nil
}
