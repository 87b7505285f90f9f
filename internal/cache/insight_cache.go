package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"solospark/internal/model"
)

// InsightCache holds computed analytics summaries with a short TTL.
type InsightCache interface {
	Get(ctx context.Context, userID string) (*model.AnalyticsSummary, error)
	Set(ctx context.Context, summary *model.AnalyticsSummary) error
	Invalidate(ctx context.Context, userID string) error
}

type insightCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInsightCache creates a new insight cache.
func NewInsightCache(client *redis.Client) InsightCache {
	return &insightCache{
		client: client,
		ttl:    10 * time.Minute,
	}
}

func (c *insightCache) key(userID string) string {
	return fmt.Sprintf("user:%s:insights", userID)
}

func (c *insightCache) Get(ctx context.Context, userID string) (*model.AnalyticsSummary, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary model.AnalyticsSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *insightCache) Set(ctx context.Context, summary *model.AnalyticsSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(summary.UserID), data, c.ttl).Err()
}

func (c *insightCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
