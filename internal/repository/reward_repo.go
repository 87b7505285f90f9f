package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"solospark/internal/model"
)

// RewardRepo handles the shop inventory.
type RewardRepo interface {
	Create(ctx context.Context, reward *model.Reward) error
	GetByID(ctx context.Context, rewardID string) (*model.Reward, error)
	List(ctx context.Context) ([]*model.Reward, error)
	Patch(ctx context.Context, rewardID string, fields map[string]interface{}) error
	Delete(ctx context.Context, rewardID string) error
}

type rewardRepo struct {
	collection *mongo.Collection
}

func NewRewardRepo(db *mongo.Database) RewardRepo {
	return &rewardRepo{collection: db.Collection("rewards")}
}

func (r *rewardRepo) Create(ctx context.Context, reward *model.Reward) error {
	if reward.ID == "" {
		reward.ID = uuid.NewString()
	}
	if reward.CreatedAt.IsZero() {
		reward.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, reward)
	return err
}

func (r *rewardRepo) GetByID(ctx context.Context, rewardID string) (*model.Reward, error) {
	var reward model.Reward
	err := r.collection.FindOne(ctx, bson.M{"_id": rewardID}).Decode(&reward)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &reward, nil
}

func (r *rewardRepo) List(ctx context.Context) ([]*model.Reward, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rewards []*model.Reward
	if err = cursor.All(ctx, &rewards); err != nil {
		return nil, err
	}
	return rewards, nil
}

func (r *rewardRepo) Patch(ctx context.Context, rewardID string, fields map[string]interface{}) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": rewardID}, bson.M{"$set": fields})
	return err
}

func (r *rewardRepo) Delete(ctx context.Context, rewardID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": rewardID})
	return err
}
