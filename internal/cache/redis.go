// Package cache provides Redis caching utilities for the application.
package cache

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"govportal/internal/middleware"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// errorCountingHook feeds command failures into the redis error counter.
// redis.Nil is a cache miss, not a failure.
type errorCountingHook struct{}

func (errorCountingHook) DialHook(next redis.DialHook) redis.DialHook { return next }

func (errorCountingHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		return countError(cmd.Name(), next(ctx, cmd))
	}
}

func (errorCountingHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		return countError("pipeline", next(ctx, cmds))
	}
}

func countError(op string, err error) error {
	if err != nil && !errors.Is(err, redis.Nil) {
		middleware.RedisErrors.WithLabelValues(op).Inc()
	}
	return err
}

// parseAddr accepts either a bare host:port or a full redis:// URL.
func parseAddr(addr string) (*redis.Options, error) {
	if strings.Contains(addr, "://") {
		return redis.ParseURL(addr)
	}
	return &redis.Options{Addr: addr}, nil
}

// InitRedis establishes the shared client. On a bad address or an
// unreachable server the client stays nil and callers degrade to direct DB
// reads, so a missing Redis never blocks startup.
func InitRedis(addr string) {
	opts, err := parseAddr(addr)
	if err != nil {
		log.Printf("Redis connection warning: invalid REDIS_URL %q: %v (continuing without cache)", addr, err)
		client = nil
		return
	}

	c := redis.NewClient(opts)
	c.AddHook(errorCountingHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		client = nil
		return
	}

	client = c
	log.Printf("Redis connected at %s", opts.Addr)
}

// SetClient overrides the client instance. Intended for tests.
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the current Redis client instance.
func GetClient() *redis.Client {
	return client
}
