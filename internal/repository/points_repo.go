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

// PointsRepo handles the append-only points ledger.
type PointsRepo interface {
	Append(ctx context.Context, tx *model.PointsTransaction) error
	ListByUser(ctx context.Context, userID string) ([]*model.PointsTransaction, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type pointsRepo struct {
	collection *mongo.Collection
}

func NewPointsRepo(db *mongo.Database) PointsRepo {
	return &pointsRepo{collection: db.Collection("points_transactions")}
}

func (r *pointsRepo) Append(ctx context.Context, tx *model.PointsTransaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, tx)
	return err
}

func (r *pointsRepo) ListByUser(ctx context.Context, userID string) ([]*model.PointsTransaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var txs []*model.PointsTransaction
	if err = cursor.All(ctx, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *pointsRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
