package model

import "time"

// TaskCategory classifies a task.
type TaskCategory string

const (
	TaskGrowth   TaskCategory = "growth"
	TaskSocial   TaskCategory = "social"
	TaskSelfCare TaskCategory = "self-care"
	TaskLearning TaskCategory = "learning"
	TaskHabit    TaskCategory = "habit"
	TaskCustom   TaskCategory = "custom"
)

// Task is a user-owned todo with a point value. Completing a task counts
// as an interaction in the user's metrics summary.
type Task struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	UserID      string       `json:"userId" bson:"userId"`
	Title       string       `json:"title" bson:"title"`
	Description string       `json:"description" bson:"description"`
	Category    TaskCategory `json:"category" bson:"category"`
	PointValue  int          `json:"pointValue" bson:"pointValue"`
	Difficulty  string       `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
	Tags        []string     `json:"tags,omitempty" bson:"tags,omitempty"`
	Completed   bool         `json:"completed" bson:"completed"`
	CompletedAt *time.Time   `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	DueDate     *time.Time   `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	CreatedAt   time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// TaskUpdate carries the mutable task fields for a partial update.
type TaskUpdate struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Category    *TaskCategory `json:"category,omitempty"`
	PointValue  *int          `json:"pointValue,omitempty"`
	Difficulty  *string       `json:"difficulty,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	DueDate     *time.Time    `json:"dueDate,omitempty"`
	Completed   *bool         `json:"completed,omitempty"`
}
