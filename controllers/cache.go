package controllers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const listCacheTTL = 10 * time.Minute

// generateCacheKey builds a stable key from the caller identity and the
// query string, order-independent.
func generateCacheKey(userID string, queryParams url.Values) string {
	keys := make([]string, 0, len(queryParams))
	for k := range queryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(userID)
	sb.WriteString(":")

	for _, key := range keys {
		values := queryParams[key]
		sort.Strings(values)
		for _, val := range values {
			sb.WriteString(key)
			sb.WriteString("=")
			sb.WriteString(val)
			sb.WriteString("&")
		}
	}
	rawKey := strings.TrimSuffix(sb.String(), "&")

	sum := sha256.Sum256([]byte(rawKey))
	return "property:" + hex.EncodeToString(sum[:])
}

func cacheGet(ctx context.Context, redisClient *redis.Client, key string) ([]byte, bool) {
	if redisClient == nil {
		return nil, false
	}
	data, err := redisClient.Get(ctx, key).Bytes()
	if err == nil {
		return data, true
	}
	if err != redis.Nil {
		slog.Warn("Redis GET error", "key", key, "error", err)
	}
	return nil, false
}

func cacheSet(ctx context.Context, redisClient *redis.Client, key string, data []byte) {
	if redisClient == nil {
		return
	}
	if err := redisClient.Set(ctx, key, data, listCacheTTL).Err(); err != nil {
		slog.Warn("Failed to cache response", "key", key, "error", err)
	}
}

// deletePropertyCache drops every cached listing page. Called after any
// property mutation.
func deletePropertyCache(redisClient *redis.Client) {
	if redisClient == nil {
		return
	}

	ctx := context.Background()
	const scanPattern = "property:*"
	const scanCount = 100

	var keysToDelete []string
	var cursor uint64
	var err error

	for {
		var currentKeys []string
		currentKeys, cursor, err = redisClient.Scan(ctx, cursor, scanPattern, scanCount).Result()
		if err != nil {
			slog.Warn("Error during Redis SCAN", "pattern", scanPattern, "error", err)
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

	pipe := redisClient.Pipeline()
	for _, key := range keysToDelete {
		pipe.Del(ctx, key)
	}
	if _, execErr := pipe.Exec(ctx); execErr != nil {
		slog.Warn("Error deleting property cache keys", "count", len(keysToDelete), "error", execErr)
	} else {
		slog.Info("Property cache invalidated", "deletedKeys", len(keysToDelete))
	}
}
