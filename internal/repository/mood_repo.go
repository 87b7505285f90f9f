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

// MoodRepo handles the append-only mood history.
type MoodRepo interface {
	Append(ctx context.Context, entry *model.MoodEntry) error
	Latest(ctx context.Context, userID string) (*model.MoodEntry, error)
	ListByUser(ctx context.Context, userID string) ([]*model.MoodEntry, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type moodRepo struct {
	collection *mongo.Collection
}

func NewMoodRepo(db *mongo.Database) MoodRepo {
	return &moodRepo{collection: db.Collection("mood_history")}
}

func (r *moodRepo) Append(ctx context.Context, entry *model.MoodEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

func (r *moodRepo) Latest(ctx context.Context, userID string) (*model.MoodEntry, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	var entry model.MoodEntry
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *moodRepo) ListByUser(ctx context.Context, userID string) ([]*model.MoodEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.MoodEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *moodRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
