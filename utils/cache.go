// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"trimmr/config"

	"github.com/go-redis/redis/v8"
)

var (
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// DraftCacheClient holds persisted booking drafts.
	DraftCacheClient *redis.Client
	// PrefsCacheClient holds persisted user preferences (e.g. location).
	PrefsCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients.
func InitRedis() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	DraftCacheClient = newRedisClient(config.AppConfig.RedisDraftDB)
	PrefsCacheClient = newRedisClient(config.AppConfig.RedisPrefsDB)
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetDraftCacheClient returns the Redis client for booking drafts.
func GetDraftCacheClient() *redis.Client {
	if DraftCacheClient == nil {
		DraftCacheClient = newRedisClient(config.AppConfig.RedisDraftDB)
	}
	return DraftCacheClient
}

// GetPrefsCacheClient returns the Redis client for user preferences.
func GetPrefsCacheClient() *redis.Client {
	if PrefsCacheClient == nil {
		PrefsCacheClient = newRedisClient(config.AppConfig.RedisPrefsDB)
	}
	return PrefsCacheClient
}
