package myredis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"myrouting/service"

	"github.com/go-redis/redis/v8"
)

// scanCount is the COUNT hint of each SCAN round trip in ListAllValues.
const scanCount = 100

// redisCache stores values of one type under "prefix:key" with an optional TTL.
type redisCache[T any] struct {
	client    redis.UniversalClient
	prefix    string
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
}

// NewCache creates a typed cache over client; keys live under prefix.
func NewCache[T any](client redis.UniversalClient, prefix string, marshal func(T) ([]byte, error), unmarshal func([]byte) (T, error)) *redisCache[T] {
	return &redisCache[T]{
		client:    client,
		prefix:    prefix,
		marshal:   marshal,
		unmarshal: unmarshal,
	}
}

// WriteValue stores item under key. ttl <= 0 keeps the key until it is deleted.
func (r *redisCache[T]) WriteValue(ctx context.Context, key string, item T, ttl time.Duration) error {
	bytes, err := r.marshal(item)
	if err != nil {
		return service.NewInternalServerError("Redis marshal item error", fmt.Errorf("can't marshal item of type %T, err: %w", item, err))
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, r.generateKey(key), bytes, ttl).Err(); err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write item of type %T to redis (key='%s'), err: %w", item, key, err))
	}
	return nil
}

// DeleteValue deletes key. Deleting a missing key succeeds.
func (r *redisCache[T]) DeleteValue(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.generateKey(key)).Err(); err != nil {
		return service.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete key '%s' from redis, err: %w", key, err))
	}
	return nil
}

// ListAllValues scans every key under the prefix and fetches the values with MGET. Keys that expire between
// SCAN and MGET and values that fail to decode are skipped. An empty prefix yields an empty map.
func (r *redisCache[T]) ListAllValues(ctx context.Context) (map[string]T, error) {
	prefixWithColon := r.prefix + ":"
	var fullKeys []string
	iter := r.client.Scan(ctx, 0, prefixWithColon+"*", scanCount).Iterator()
	for iter.Next(ctx) {
		fullKeys = append(fullKeys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, service.NewInternalServerError("Redis scan keys error", fmt.Errorf("redis scan error, err: %w", err))
	}

	items := make(map[string]T, len(fullKeys))
	if len(fullKeys) == 0 {
		return items, nil
	}
	values, err := r.client.MGet(ctx, fullKeys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, service.NewInternalServerError("Redis get values error", fmt.Errorf("redis mget error, err: %w", err))
	}
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		item, err := r.unmarshal([]byte(s))
		if err != nil {
			continue
		}
		items[strings.TrimPrefix(fullKeys[i], prefixWithColon)] = item
	}
	return items, nil
}

func (r *redisCache[T]) generateKey(key string) string {
	return r.prefix + ":" + key
}
