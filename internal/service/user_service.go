package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"solospark/internal/cache"
	"solospark/internal/model"
	"solospark/internal/repository"
)

// UserService manages user profiles and their append-only histories.
type UserService struct {
	users       repository.UserRepo
	traits      repository.TraitRepo
	moods       repository.MoodRepo
	points      repository.PointsRepo
	responses   repository.ResponseRepo
	metrics     repository.MetricsRepo
	tasks       repository.TaskRepo
	leaderboard cache.LeaderboardCache
	log         *zap.Logger
}

// NewUserService creates a new user service.
func NewUserService(
	users repository.UserRepo,
	traits repository.TraitRepo,
	moods repository.MoodRepo,
	points repository.PointsRepo,
	responses repository.ResponseRepo,
	metrics repository.MetricsRepo,
	tasks repository.TaskRepo,
	leaderboard cache.LeaderboardCache,
	log *zap.Logger,
) *UserService {
	return &UserService{
		users:       users,
		traits:      traits,
		moods:       moods,
		points:      points,
		responses:   responses,
		metrics:     metrics,
		tasks:       tasks,
		leaderboard: leaderboard,
		log:         log,
	}
}

// GetProfile returns the profile or ErrProfileNotFound.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	profile, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// SaveProfile creates the profile if it does not exist and patches the
// mutable fields otherwise. New profiles start with the default need list.
func (s *UserService) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	if strings.TrimSpace(profile.Email) == "" {
		return fmt.Errorf("email is required")
	}
	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))

	existing, err := s.users.GetByID(ctx, profile.ID)
	if err != nil {
		return fmt.Errorf("fetch profile: %w", err)
	}

	if existing == nil {
		if len(profile.EmotionalProfile.EmotionalNeeds) == 0 {
			profile.EmotionalProfile.EmotionalNeeds = []string{"Support"}
		}
		if profile.PrivacyLevel == "" {
			profile.PrivacyLevel = "private"
		}
		if err := s.users.Create(ctx, profile); err != nil {
			s.log.Error("create profile failed", zap.Error(err))
			return fmt.Errorf("create profile: %w", err)
		}
		s.log.Info("profile created", zap.String("userId", profile.ID))
		return nil
	}

	fields := map[string]interface{}{
		"email":        profile.Email,
		"displayName":  profile.DisplayName,
		"phoneNumber":  profile.PhoneNumber,
		"privacyLevel": profile.PrivacyLevel,
	}
	if err := s.users.Patch(ctx, existing.ID, fields); err != nil {
		s.log.Error("patch profile failed", zap.String("userId", existing.ID), zap.Error(err))
		return fmt.Errorf("patch profile: %w", err)
	}
	profile.ID = existing.ID
	return nil
}

// SavePersonalityTrait appends a manually recorded snapshot. Trait values
// are stored on the 0-1 scale.
func (s *UserService) SavePersonalityTrait(ctx context.Context, snapshot *model.TraitSnapshot) error {
	for _, score := range []model.TraitScore{snapshot.Openness, snapshot.Neuroticism, snapshot.Agreeableness} {
		if score.Value < 0 || score.Value > 1 {
			return fmt.Errorf("trait value must be between 0 and 1")
		}
	}
	if err := s.traits.Append(ctx, snapshot); err != nil {
		s.log.Error("append trait snapshot failed",
			zap.String("userId", snapshot.UserID), zap.Error(err))
		return fmt.Errorf("append trait snapshot: %w", err)
	}
	return nil
}

// SaveMoodEntry appends a user-recorded mood.
func (s *UserService) SaveMoodEntry(ctx context.Context, entry *model.MoodEntry) error {
	if strings.TrimSpace(entry.Mood) == "" {
		return fmt.Errorf("mood state is required")
	}
	if entry.Intensity < 1 || entry.Intensity > 10 {
		return fmt.Errorf("intensity must be between 1 and 10")
	}
	if err := s.moods.Append(ctx, entry); err != nil {
		s.log.Error("append mood entry failed",
			zap.String("userId", entry.UserID), zap.Error(err))
		return fmt.Errorf("append mood entry: %w", err)
	}
	return nil
}

// SavePointsTransaction appends a ledger record and adjusts the stored
// balance, which never drops below zero.
func (s *UserService) SavePointsTransaction(ctx context.Context, tx *model.PointsTransaction) error {
	if tx.Amount <= 0 {
		return fmt.Errorf("amount must be a positive number")
	}
	if tx.Type != model.PointsEarned && tx.Type != model.PointsBonus {
		return fmt.Errorf("type must be %q or %q", model.PointsEarned, model.PointsBonus)
	}

	profile, err := s.GetProfile(ctx, tx.UserID)
	if err != nil {
		return err
	}

	if err := s.points.Append(ctx, tx); err != nil {
		s.log.Error("append points transaction failed",
			zap.String("userId", tx.UserID), zap.Error(err))
		return fmt.Errorf("append points transaction: %w", err)
	}

	balance := profile.CurrentPoints + tx.Amount
	if balance < 0 {
		balance = 0
	}
	if err := s.users.Patch(ctx, tx.UserID, map[string]interface{}{"currentPoints": balance}); err != nil {
		s.log.Error("update points balance failed",
			zap.String("userId", tx.UserID), zap.Error(err))
		return fmt.Errorf("update points balance: %w", err)
	}
	return nil
}

// ListMoodHistory returns the user's mood entries, newest first.
func (s *UserService) ListMoodHistory(ctx context.Context, userID string) ([]*model.MoodEntry, error) {
	return s.moods.ListByUser(ctx, userID)
}

// ListPointsHistory returns the user's points ledger, newest first.
func (s *UserService) ListPointsHistory(ctx context.Context, userID string) ([]*model.PointsTransaction, error) {
	return s.points.ListByUser(ctx, userID)
}

// DeleteUser removes every per-user collection and then the profile.
// Partial failures stop the batch so a retry can finish the job.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	deletions := []struct {
		name string
		fn   func(context.Context, string) error
	}{
		{"trait snapshots", s.traits.DeleteByUser},
		{"mood history", s.moods.DeleteByUser},
		{"points transactions", s.points.DeleteByUser},
		{"quest responses", s.responses.DeleteByUser},
		{"tasks", s.tasks.DeleteByUser},
		{"metrics summary", s.metrics.Delete},
	}
	for _, d := range deletions {
		if err := d.fn(ctx, userID); err != nil {
			s.log.Error("delete user data failed",
				zap.String("userId", userID), zap.String("collection", d.name), zap.Error(err))
			return fmt.Errorf("delete %s: %w", d.name, err)
		}
	}

	if s.leaderboard != nil {
		if err := s.leaderboard.Remove(ctx, userID); err != nil {
			s.log.Warn("leaderboard removal failed",
				zap.String("userId", userID), zap.Error(err))
		}
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		s.log.Error("delete profile failed", zap.String("userId", userID), zap.Error(err))
		return fmt.Errorf("delete profile: %w", err)
	}
	s.log.Info("user deleted", zap.String("userId", userID))
	return nil
}
