package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"solospark/internal/model"
)

// QuestCache is a read-through cache for resolved quests. Quests are
// immutable after creation, so a long TTL is safe.
type QuestCache interface {
	Get(ctx context.Context, questID string) (*model.Quest, error)
	Set(ctx context.Context, quest *model.Quest) error
}

type questCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQuestCache creates a new quest cache.
func NewQuestCache(client *redis.Client) QuestCache {
	return &questCache{
		client: client,
		ttl:    time.Hour,
	}
}

func (c *questCache) key(questID string) string {
	return fmt.Sprintf("quest:%s", questID)
}

func (c *questCache) Get(ctx context.Context, questID string) (*model.Quest, error) {
	data, err := c.client.Get(ctx, c.key(questID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var quest model.Quest
	if err := json.Unmarshal([]byte(data), &quest); err != nil {
		return nil, err
	}
	return &quest, nil
}

func (c *questCache) Set(ctx context.Context, quest *model.Quest) error {
	data, err := json.Marshal(quest)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(quest.ID), data, c.ttl).Err()
}
