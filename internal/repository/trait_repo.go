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

// TraitRepo handles the append-only personality snapshot history.
type TraitRepo interface {
	Append(ctx context.Context, snapshot *model.TraitSnapshot) error
	Latest(ctx context.Context, userID string) (*model.TraitSnapshot, error)
	ListByUser(ctx context.Context, userID string) ([]*model.TraitSnapshot, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type traitRepo struct {
	collection *mongo.Collection
}

func NewTraitRepo(db *mongo.Database) TraitRepo {
	return &traitRepo{collection: db.Collection("trait_snapshots")}
}

func (r *traitRepo) Append(ctx context.Context, snapshot *model.TraitSnapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}
	if snapshot.Timestamp.IsZero() {
		snapshot.Timestamp = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, snapshot)
	return err
}

// Latest returns the most recent snapshot by timestamp, nil if none exists.
func (r *traitRepo) Latest(ctx context.Context, userID string) (*model.TraitSnapshot, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	var snapshot model.TraitSnapshot
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&snapshot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

// ListByUser returns the full snapshot history, newest first.
func (r *traitRepo) ListByUser(ctx context.Context, userID string) ([]*model.TraitSnapshot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var snapshots []*model.TraitSnapshot
	if err = cursor.All(ctx, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *traitRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
