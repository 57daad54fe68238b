package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"aircast/internal/shared/config"
	appLogger "aircast/internal/shared/logger"
)

var (
	client   *goredis.Client
	clientMu sync.RWMutex
)

// Init establishes the Redis connection used by the realtime feed.
func Init(cfg *config.RedisConfig) error {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	clientMu.Lock()
	client = rdb
	clientMu.Unlock()

	appLogger.Info("redis connection established", "addr", cfg.GetAddr())
	return nil
}

// Get returns the Redis client
func Get() *goredis.Client {
	clientMu.RLock()
	defer clientMu.RUnlock()
	return client
}

// Close closes the Redis connection
func Close() error {
	clientMu.RLock()
	current := client
	clientMu.RUnlock()

	if current == nil {
		return nil
	}
	return current.Close()
}
