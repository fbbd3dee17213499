// Package kv implements the pipeline's stores on a namespaced key-value
// backend. The backend offers no transactions and no server-side queries, so
// every secondary index (link map, per-day id lists, status lists) is
// maintained client-side with read-modify-write updates. Concurrent writers
// to the same list key can lose updates; the deployment assumes one pipeline
// run at a time.
package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Backend is the minimal key-value contract the stores are built on.
// Get reports a miss with found == false, not an error.
type Backend interface {
	Get(ctx context.Context, namespace, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, namespace, key string) error
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisBackend implements Backend on a Redis server, mapping
// (namespace, key) to the Redis key "<namespace>:<key>".
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(ctx context.Context, cfg RedisConfig) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisBackend{client: client}, nil
}

func (b *RedisBackend) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	value, err := b.client.Get(ctx, namespace+":"+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s:%s: %w", namespace, key, err)
	}
	return value, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error {
	if err := b.client.Set(ctx, namespace+":"+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("set %s:%s: %w", namespace, key, err)
	}
	return nil
}

func (b *RedisBackend) Delete(ctx context.Context, namespace, key string) error {
	if err := b.client.Del(ctx, namespace+":"+key).Err(); err != nil {
		return fmt.Errorf("delete %s:%s: %w", namespace, key, err)
	}
	return nil
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}

// DayKey formats a time as the date key used by all date-partitioned indexes.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
