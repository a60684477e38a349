package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents the current status of the reply cache.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth *HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot, or nil if no
// monitor has run yet.
func GetHealthStatus() *HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	if currentHealth == nil {
		return nil
	}
	snapshot := *currentHealth
	return &snapshot
}

// CheckHealth pings the cache once and stores the result.
func CheckHealth(ctx context.Context, client *redis.Client) HealthStatus {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{
		Redis:     client.Ping(pingCtx).Err() == nil,
		CheckedAt: time.Now(),
	}
	mu.Lock()
	currentHealth = &status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, client *redis.Client, interval time.Duration) {
	CheckHealth(ctx, client)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, client)
			}
		}
	}()
}
