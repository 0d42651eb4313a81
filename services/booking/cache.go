package booking

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// DayGridCache stores rendered day grids keyed by room and date. GetGrid
// returns nil data and a nil error on a miss.
type DayGridCache interface {
	GetGrid(ctx context.Context, key string) ([]byte, error)
	SetGrid(ctx context.Context, key string, data []byte, ttl time.Duration) error
	DeleteGrid(ctx context.Context, key string) error
}

// RedisGridCache implements DayGridCache on the shared Redis cache client.
type RedisGridCache struct {
	Client *redis.Client
}

func (c *RedisGridCache) GetGrid(ctx context.Context, key string) ([]byte, error) {
	data, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

func (c *RedisGridCache) SetGrid(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.Client.Set(ctx, key, data, ttl).Err()
}

func (c *RedisGridCache) DeleteGrid(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}
