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

// QuestRepo handles the quest catalog.
type QuestRepo interface {
	Create(ctx context.Context, quest *model.Quest) error
	GetByID(ctx context.Context, questID string) (*model.Quest, error)
	GetByIDs(ctx context.Context, questIDs []string) (map[string]*model.Quest, error)
	List(ctx context.Context) ([]*model.Quest, error)
	IncrementResponseCount(ctx context.Context, questID string) error
}

type questRepo struct {
	collection *mongo.Collection
}

func NewQuestRepo(db *mongo.Database) QuestRepo {
	return &questRepo{collection: db.Collection("quests")}
}

func (r *questRepo) Create(ctx context.Context, quest *model.Quest) error {
	if quest.ID == "" {
		quest.ID = uuid.NewString()
	}
	if quest.CreatedAt.IsZero() {
		quest.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, quest)
	return err
}

func (r *questRepo) GetByID(ctx context.Context, questID string) (*model.Quest, error) {
	var quest model.Quest
	err := r.collection.FindOne(ctx, bson.M{"_id": questID}).Decode(&quest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &quest, nil
}

// GetByIDs resolves a batch of quest ids. Missing ids are simply absent
// from the result map.
func (r *questRepo) GetByIDs(ctx context.Context, questIDs []string) (map[string]*model.Quest, error) {
	quests := make(map[string]*model.Quest, len(questIDs))
	if len(questIDs) == 0 {
		return quests, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": questIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var quest model.Quest
		if err := cursor.Decode(&quest); err != nil {
			return nil, err
		}
		quests[quest.ID] = &quest
	}
	return quests, cursor.Err()
}

func (r *questRepo) List(ctx context.Context) ([]*model.Quest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var quests []*model.Quest
	if err = cursor.All(ctx, &quests); err != nil {
		return nil, err
	}
	return quests, nil
}

func (r *questRepo) IncrementResponseCount(ctx context.Context, questID string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": questID},
		bson.M{"$inc": bson.M{"responseCount": 1}})
	return err
}
