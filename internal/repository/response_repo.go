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

// ResponseRepo handles the append-only quest response history.
type ResponseRepo interface {
	Append(ctx context.Context, response *model.QuestResponse) error
	ListByUser(ctx context.Context, userID string) ([]model.QuestResponse, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type responseRepo struct {
	collection *mongo.Collection
}

func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{collection: db.Collection("quest_responses")}
}

func (r *responseRepo) Append(ctx context.Context, response *model.QuestResponse) error {
	if response.ID == "" {
		response.ID = uuid.NewString()
	}
	if response.Timestamp.IsZero() {
		response.Timestamp = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, response)
	return err
}

// ListByUser returns the full response history, newest first.
func (r *responseRepo) ListByUser(ctx context.Context, userID string) ([]model.QuestResponse, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []model.QuestResponse
	if err = cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
