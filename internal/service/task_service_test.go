package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"solospark/internal/model"
)

func boolPtr(v bool) *bool { return &v }

func TestCreateTaskValidation(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), newFakeMetricsRepo(), zap.NewNop())

	_, err := svc.CreateTask(context.Background(), &model.Task{UserID: "u1", Title: "  "})
	assert.Error(t, err)

	_, err = svc.CreateTask(context.Background(), &model.Task{UserID: "u1", Title: "journal", PointValue: -1})
	assert.Error(t, err)
}

func TestCreateTaskDefaultsCategory(t *testing.T) {
	tasks := newFakeTaskRepo()
	svc := NewTaskService(tasks, newFakeMetricsRepo(), zap.NewNop())

	id, err := svc.CreateTask(context.Background(), &model.Task{UserID: "u1", Title: "journal"})
	require.NoError(t, err)
	assert.Equal(t, model.TaskCustom, tasks.tasks[id].Category)
}

func TestUpdateTaskCompletionBumpsMetrics(t *testing.T) {
	tasks := newFakeTaskRepo()
	metrics := newFakeMetricsRepo()
	svc := NewTaskService(tasks, metrics, zap.NewNop())
	ctx := context.Background()

	id, err := svc.CreateTask(ctx, &model.Task{UserID: "u1", Title: "evening walk", Category: model.TaskSelfCare})
	require.NoError(t, err)

	updated, err := svc.UpdateTask(ctx, id, &model.TaskUpdate{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt)

	summary := metrics.summaries["u1"]
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.EngagementProfile.InteractionFrequency)

	// Re-completing an already completed task is not another interaction.
	_, err = svc.UpdateTask(ctx, id, &model.TaskUpdate{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.summaries["u1"].EngagementProfile.InteractionFrequency)
}

func TestUpdateTaskNotFound(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), newFakeMetricsRepo(), zap.NewNop())

	_, err := svc.UpdateTask(context.Background(), "missing", &model.TaskUpdate{})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	tasks := newFakeTaskRepo()
	svc := NewTaskService(tasks, newFakeMetricsRepo(), zap.NewNop())
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteTask(ctx, "missing"), ErrTaskNotFound)

	id, err := svc.CreateTask(ctx, &model.Task{UserID: "u1", Title: "journal"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteTask(ctx, id))
	assert.Empty(t, tasks.tasks)
}
