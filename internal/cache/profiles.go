package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	profileKeyPrefix = "profile:%d"

	// ProfileTTL bounds how stale a cached profile may get; role approvals
	// invalidate eagerly, so this is a backstop.
	ProfileTTL = 5 * time.Minute
)

// ProfileKey returns the cache key for a profile row.
func ProfileKey(profileID uint) string {
	return fmt.Sprintf(profileKeyPrefix, profileID)
}

// Aside implements the cache-aside pattern: try the key, on miss call load
// and store the result with the given TTL. dest must be json-serializable.
// A nil client degrades to a plain load.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, load func() error) error {
	if client == nil {
		return load()
	}

	raw, err := client.Get(ctx, key).Result()
	if err == nil {
		if jsonErr := json.Unmarshal([]byte(raw), dest); jsonErr == nil {
			return nil
		}
		// Corrupt entry: drop it and fall through to the loader.
		client.Del(ctx, key)
	} else if err != redis.Nil {
		// Redis down mid-flight; serve from the database.
		return load()
	}

	if err := load(); err != nil {
		return err
	}

	if encoded, jsonErr := json.Marshal(dest); jsonErr == nil {
		client.Set(ctx, key, encoded, ttl)
	}
	return nil
}

// Invalidate removes a key if a client is configured.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateProfile drops the cached profile row. Called on every mutation
// that changes role/verification state so the next page load sees it.
func InvalidateProfile(ctx context.Context, profileID uint) {
	Invalidate(ctx, ProfileKey(profileID))
}
