package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"solospark/internal/model"
)

// MetricsRepo handles the single per-user metrics summary document.
type MetricsRepo interface {
	GetSummary(ctx context.Context, userID string) (*model.MetricsSummary, error)
	UpsertSummary(ctx context.Context, summary *model.MetricsSummary) error
	PatchMood(ctx context.Context, userID, mood string) error
	Delete(ctx context.Context, userID string) error
}

type metricsRepo struct {
	collection *mongo.Collection
}

func NewMetricsRepo(db *mongo.Database) MetricsRepo {
	return &metricsRepo{collection: db.Collection("metrics")}
}

func (r *metricsRepo) GetSummary(ctx context.Context, userID string) (*model.MetricsSummary, error) {
	var summary model.MetricsSummary
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&summary)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}

// UpsertSummary writes the whole summary, creating it if absent.
func (r *metricsRepo) UpsertSummary(ctx context.Context, summary *model.MetricsSummary) error {
	summary.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": summary.UserID}, summary, opts)
	return err
}

// PatchMood sets only the derived mood field.
func (r *metricsRepo) PatchMood(ctx context.Context, userID, mood string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{
			"emotionalProfileMetrics.currentMood": mood,
			"updatedAt":                           time.Now(),
		},
	})
	return err
}

func (r *metricsRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": userID})
	return err
}
