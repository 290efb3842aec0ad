package cache

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "properties:"
	cacheTTL  = 10 * time.Minute
)

type RedisPropertyCache struct {
	client *redis.Client
}

func NewRedisPropertyCache(client *redis.Client) *RedisPropertyCache {
	return &RedisPropertyCache{client: client}
}

func ownerKey(ownerID int64) string {
	return keyPrefix + strconv.FormatInt(ownerID, 10)
}

func (c *RedisPropertyCache) Get(ctx context.Context, ownerID int64) ([]byte, bool) {
	key := ownerKey(ownerID)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		log.Printf("Cache Hit for key: %s", key)
		return data, true
	}
	if err != redis.Nil {
		log.Printf("Redis GET error for key %s: %v", key, err)
	}
	log.Printf("Cache Miss for key: %s", key)
	return nil, false
}

func (c *RedisPropertyCache) Set(ctx context.Context, ownerID int64, payload []byte) {
	key := ownerKey(ownerID)
	if err := c.client.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
		log.Printf("Failed to cache response for key %s: %v", key, err)
	}
}

// Invalidate drops every cached listing. Create and delete do not always
// know which owners are affected, so the whole keyspace goes.
func (c *RedisPropertyCache) Invalidate(ctx context.Context) {
	const scanPattern = keyPrefix + "*"
	const scanCount = 100

	var keysToDelete []string
	var cursor uint64
	var err error

	for {
		var currentKeys []string
		currentKeys, cursor, err = c.client.Scan(ctx, cursor, scanPattern, scanCount).Result()
		if err != nil {
			log.Printf("Error during Redis SCAN for pattern '%s': %v", scanPattern, err)
			return
		}
		keysToDelete = append(keysToDelete, currentKeys...)
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		return
	}

	pipe := c.client.Pipeline()
	for _, key := range keysToDelete {
		pipe.Del(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("Error executing pipeline for deleting %d cache keys: %v", len(keysToDelete), err)
	} else {
		log.Printf("Property cache invalidated, deleted %d keys", len(keysToDelete))
	}
}
