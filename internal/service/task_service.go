package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"solospark/internal/model"
	"solospark/internal/repository"
)

// ErrTaskNotFound means the referenced task does not exist.
var ErrTaskNotFound = errors.New("task not found")

// TaskService manages user tasks. Completing a task counts as an
// interaction in the metrics summary.
type TaskService struct {
	tasks   repository.TaskRepo
	metrics repository.MetricsRepo
	log     *zap.Logger
}

// NewTaskService creates a new task service.
func NewTaskService(tasks repository.TaskRepo, metrics repository.MetricsRepo, log *zap.Logger) *TaskService {
	return &TaskService{tasks: tasks, metrics: metrics, log: log}
}

// CreateTask validates and stores a new task.
func (s *TaskService) CreateTask(ctx context.Context, task *model.Task) (string, error) {
	if strings.TrimSpace(task.Title) == "" {
		return "", fmt.Errorf("title is required")
	}
	if task.PointValue < 0 {
		return "", fmt.Errorf("point value cannot be negative")
	}
	if task.Category == "" {
		task.Category = model.TaskCustom
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		s.log.Error("create task failed", zap.String("userId", task.UserID), zap.Error(err))
		return "", fmt.Errorf("create task: %w", err)
	}
	return task.ID, nil
}

// GetTask returns a task or ErrTaskNotFound.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*model.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("fetch task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// ListTasks returns the user's tasks, newest first.
func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

// UpdateTask applies a partial update. Flipping Completed to true stamps
// completedAt and bumps the owner's interaction count.
func (s *TaskService) UpdateTask(ctx context.Context, taskID string, update *model.TaskUpdate) (*model.Task, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Category != nil {
		fields["category"] = *update.Category
	}
	if update.PointValue != nil {
		if *update.PointValue < 0 {
			return nil, fmt.Errorf("point value cannot be negative")
		}
		fields["pointValue"] = *update.PointValue
	}
	if update.Difficulty != nil {
		fields["difficulty"] = *update.Difficulty
	}
	if update.Tags != nil {
		fields["tags"] = update.Tags
	}
	if update.DueDate != nil {
		fields["dueDate"] = *update.DueDate
	}

	justCompleted := update.Completed != nil && *update.Completed && !task.Completed
	if update.Completed != nil {
		fields["completed"] = *update.Completed
		if justCompleted {
			fields["completedAt"] = time.Now()
		}
	}

	if len(fields) > 0 {
		if err := s.tasks.Patch(ctx, taskID, fields); err != nil {
			s.log.Error("patch task failed", zap.String("taskId", taskID), zap.Error(err))
			return nil, fmt.Errorf("patch task: %w", err)
		}
	}

	if justCompleted {
		if err := s.recordCompletion(ctx, task.UserID); err != nil {
			return nil, err
		}
		s.log.Info("task completed",
			zap.String("userId", task.UserID), zap.String("taskId", taskID))
	}

	return s.GetTask(ctx, taskID)
}

// DeleteTask removes a task.
func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, taskID); err != nil {
		s.log.Error("delete task failed", zap.String("taskId", taskID), zap.Error(err))
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (s *TaskService) recordCompletion(ctx context.Context, userID string) error {
	summary, err := s.metrics.GetSummary(ctx, userID)
	if err != nil {
		s.log.Error("fetch metrics summary failed", zap.String("userId", userID), zap.Error(err))
		return fmt.Errorf("fetch metrics summary: %w", err)
	}
	if summary == nil {
		summary = model.NewMetricsSummary(userID)
	}
	summary.EngagementProfile.InteractionFrequency++

	if err := s.metrics.UpsertSummary(ctx, summary); err != nil {
		s.log.Error("upsert metrics summary failed", zap.String("userId", userID), zap.Error(err))
		return fmt.Errorf("upsert metrics summary: %w", err)
	}
	return nil
}
