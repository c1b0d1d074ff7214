package utils

import (
	"context"
	"fmt"
	"time"

	"hoteladmin/config"

	"github.com/go-redis/redis/v8"
)

// InitSessionCache connects the Redis client used by the session gate.
// It returns nil, nil when Redis is disabled in configuration.
func InitSessionCache(cfg config.Config) (*redis.Client, error) {
	if !cfg.RedisEnabled {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (session cache): %w", err)
	}
	return client, nil
}
