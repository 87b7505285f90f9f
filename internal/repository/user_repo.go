package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"solospark/internal/model"
)

// UserRepo handles the root user profile documents.
type UserRepo interface {
	Create(ctx context.Context, profile *model.UserProfile) error
	GetByID(ctx context.Context, userID string) (*model.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*model.UserProfile, error)
	Patch(ctx context.Context, userID string, fields map[string]interface{}) error
	IncrementPoints(ctx context.Context, userID string, delta int) error
	Delete(ctx context.Context, userID string) error
}

type userRepo struct {
	collection *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepo{collection: db.Collection("users")}
}

func (r *userRepo) Create(ctx context.Context, profile *model.UserProfile) error {
	now := time.Now()
	if profile.ProfileCreatedAt.IsZero() {
		profile.ProfileCreatedAt = now
	}
	profile.LastUpdatedAt = now

	_, err := r.collection.InsertOne(ctx, profile)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, userID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Patch sets only the given fields and bumps lastUpdatedAt.
func (r *userRepo) Patch(ctx context.Context, userID string, fields map[string]interface{}) error {
	set := bson.M{"lastUpdatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	return err
}

// IncrementPoints atomically adjusts currentPoints.
func (r *userRepo) IncrementPoints(ctx context.Context, userID string, delta int) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$inc": bson.M{"currentPoints": delta},
		"$set": bson.M{"lastUpdatedAt": time.Now()},
	})
	return err
}

func (r *userRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": userID})
	return err
}
