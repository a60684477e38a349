// File: services/intelligence/replyCache.go
package ai

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const aiReplyPrefix = "ai:reply:"

type RedisReplyCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisReplyCache(client *redis.Client, ttl time.Duration) *RedisReplyCache {
	return &RedisReplyCache{client: client, ttl: ttl}
}

func (s *RedisReplyCache) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := s.client.Get(ctx, aiReplyPrefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return data, true, nil
}

func (s *RedisReplyCache) Set(ctx context.Context, key, reply string) error {
	return s.client.Set(ctx, aiReplyPrefix+key, reply, s.ttl).Err()
}
