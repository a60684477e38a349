// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"studyplanner/config"

	"github.com/go-redis/redis/v8"
)

// NewCacheClient connects to the reply cache. It returns nil, nil when no
// Redis address is configured.
func NewCacheClient(ctx context.Context) (*redis.Client, error) {
	if config.AppConfig.RedisAddr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (Cache): %w", err)
	}
	return client, nil
}
