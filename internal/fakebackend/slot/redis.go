package slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores the value as a plain Redis string.
type RedisSlot struct {
	rdb redis.UniversalClient
	key string
}

func NewRedisSlot(rdb redis.UniversalClient, key string) *RedisSlot {
	return &RedisSlot{rdb: rdb, key: key}
}

func (s *RedisSlot) Load(ctx context.Context) ([]byte, error) {
	value, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return value, nil
}

func (s *RedisSlot) Save(ctx context.Context, data []byte) error {
	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisSlot) Close() error {
	return s.rdb.Close()
}
