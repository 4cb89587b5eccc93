package counter

import (
	"context"
	"errors"

	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/redis/go-redis/v9"
)

const defaultKey = "labyrinth:counter"

var ErrNilClient = errors.New("redis client is nil")

// RedisCounter numbers labyrinths with a shared Redis key so ids stay unique
// across server replicas.
type RedisCounter struct {
	client *redis.Client
	key    string
}

// NewRedisCounter initializes a RedisCounter on the given key.
func NewRedisCounter(client *redis.Client, key string) (i.Counter, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if key == "" {
		key = defaultKey
	}
	return &RedisCounter{
		client: client,
		key:    key,
	}, nil
}

// Next implements i.Counter.
func (rc *RedisCounter) Next(ctx context.Context) (int64, error) {
	return rc.client.Incr(ctx, rc.key).Result()
}
