package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"solospark/internal/model"
)

// TaskRepo handles the task documents.
type TaskRepo interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, taskID string) (*model.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Task, error)
	Patch(ctx context.Context, taskID string, fields map[string]interface{}) error
	Delete(ctx context.Context, taskID string) error
	DeleteByUser(ctx context.Context, userID string) error
}

type taskRepo struct {
	collection *mongo.Collection
}

func NewTaskRepo(db *mongo.Database) TaskRepo {
	return &taskRepo{collection: db.Collection("tasks")}
}

func (r *taskRepo) Create(ctx context.Context, task *model.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := time.Now()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, task)
	return err
}

func (r *taskRepo) GetByID(ctx context.Context, taskID string) (*model.Task, error) {
	var task model.Task
	err := r.collection.FindOne(ctx, bson.M{"_id": taskID}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepo) ListByUser(ctx context.Context, userID string) ([]*model.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.Task
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepo) Patch(ctx context.Context, taskID string, fields map[string]interface{}) error {
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": taskID}, bson.M{"$set": set})
	return err
}

func (r *taskRepo) Delete(ctx context.Context, taskID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": taskID})
	return err
}

func (r *taskRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
