package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// SelectionCache stores the counselor's last-selected client. It is a
// session-scoped convenience preference, injected where needed so the
// assessment core never reads ambient state.
type SelectionCache interface {
	SetLastClient(ctx context.Context, counselorID, clientID string) error
	GetLastClient(ctx context.Context, counselorID string) (string, error)
}

type selectionCache struct {
	client *redis.Client
}

func NewSelectionCache(client *redis.Client) SelectionCache {
	return &selectionCache{
		client: client,
	}
}

func (c *selectionCache) SetLastClient(ctx context.Context, counselorID, clientID string) error {
	return c.client.Set(ctx, "lastclient:"+counselorID, clientID, 24*time.Hour).Err()
}

func (c *selectionCache) GetLastClient(ctx context.Context, counselorID string) (string, error) {
	val, err := c.client.Get(ctx, "lastclient:"+counselorID).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}
