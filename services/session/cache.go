package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hoteladmin/models"
	"hoteladmin/utils"

	"github.com/go-redis/redis/v8"
)

// Cache remembers recently verified sessions, keyed by token hash.
type Cache interface {
	Get(ctx context.Context, tokenHash string) (models.Principal, bool, error)
	Put(ctx context.Context, tokenHash string, p models.Principal, ttl time.Duration) error
	Delete(ctx context.Context, tokenHash string) error
	EvictUser(ctx context.Context, uid string) error
}

// RedisCache stores each session under session:<hash> and indexes the hashes
// of a user under sessions:uid:<uid> so sign-out can evict all of them.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

type cachedSession struct {
	UID      string    `json:"uid"`
	Email    string    `json:"email"`
	CachedAt time.Time `json:"cachedAt"`
}

func (c *RedisCache) Get(ctx context.Context, tokenHash string) (models.Principal, bool, error) {
	data, err := c.client.Get(ctx, utils.SessionCachePrefix+tokenHash).Result()
	if errors.Is(err, redis.Nil) {
		return models.Principal{}, false, nil
	}
	if err != nil {
		return models.Principal{}, false, fmt.Errorf("failed to read cached session: %w", err)
	}
	var s cachedSession
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return models.Principal{}, false, fmt.Errorf("failed to unmarshal cached session: %w", err)
	}
	return models.Principal{UID: s.UID, Email: s.Email}, true, nil
}

func (c *RedisCache) Put(ctx context.Context, tokenHash string, p models.Principal, ttl time.Duration) error {
	data, err := json.Marshal(cachedSession{UID: p.UID, Email: p.Email, CachedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	indexKey := utils.SessionIndexPrefix + p.UID
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, utils.SessionCachePrefix+tokenHash, data, ttl)
		pipe.SAdd(ctx, indexKey, tokenHash)
		pipe.Expire(ctx, indexKey, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to cache session: %w", err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, tokenHash string) error {
	return c.client.Del(ctx, utils.SessionCachePrefix+tokenHash).Err()
}

func (c *RedisCache) EvictUser(ctx context.Context, uid string) error {
	indexKey := utils.SessionIndexPrefix + uid
	hashes, err := c.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return fmt.Errorf("failed to read session index: %w", err)
	}
	keys := make([]string, 0, len(hashes)+1)
	for _, h := range hashes {
		keys = append(keys, utils.SessionCachePrefix+h)
	}
	keys = append(keys, indexKey)
	return c.client.Del(ctx, keys...).Err()
}
