// SPDX-License-Identifier: Apache-2.0
package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

// RedisHash is the hash all wizard settings live in
const RedisHash = "welcome:settings"

// RedisStore keeps settings in a redis hash so several panel nodes share
// the wizard state
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisStore connects to redisURL and verifies the connection
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("settings.redis-url is required for the redis backend")
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, ctx: ctx}, nil
}

// GetInt implements Reader. Connection errors read as unset.
func (r *RedisStore) GetInt(key string, def int) int {
	raw, err := r.client.HGet(r.ctx, RedisHash, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Debugf("settings: redis HGET %s failed: %v", key, err)
		}
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// Set implements Store
func (r *RedisStore) Set(key string, value any) error {
	if err := r.client.HSet(r.ctx, RedisHash, key, fmt.Sprint(value)).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Close releases the redis connection pool
func (r *RedisStore) Close() error {
	return r.client.Close()
}
