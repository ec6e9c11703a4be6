package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// ExclusionCache stores the session-scoped temporary exclusion list fed into
// the matching engine on top of the client's permanent contraindications and
// allergies. The list expires with the working session.
type ExclusionCache interface {
	Set(ctx context.Context, counselorID, clientID string, tags []string) error
	Get(ctx context.Context, counselorID, clientID string) ([]string, error)
	Clear(ctx context.Context, counselorID, clientID string) error
}

type exclusionCache struct {
	client *redis.Client
}

func NewExclusionCache(client *redis.Client) ExclusionCache {
	return &exclusionCache{
		client: client,
	}
}

func (c *exclusionCache) Set(ctx context.Context, counselorID, clientID string, tags []string) error {
	data, err := json.Marshal(tags)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, exclusionKey(counselorID, clientID), data, 4*time.Hour).Err()
}

func (c *exclusionCache) Get(ctx context.Context, counselorID, clientID string) ([]string, error) {
	data, err := c.client.Get(ctx, exclusionKey(counselorID, clientID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var tags []string
	if err := json.Unmarshal([]byte(data), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *exclusionCache) Clear(ctx context.Context, counselorID, clientID string) error {
	return c.client.Del(ctx, exclusionKey(counselorID, clientID)).Err()
}

func exclusionKey(counselorID, clientID string) string {
	return "exclusions:" + counselorID + ":" + clientID
}
