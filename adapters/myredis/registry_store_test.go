package myredis

import (
	"context"
	"testing"
	"time"

	"myrouting/domain"
	"myrouting/service"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRedisAddr = "redis://localhost:6379"

// setupTestRedis connects to a local Redis and clears prefix; the test is skipped when Redis is not running.
func setupTestRedis(t *testing.T, prefix string) redis.UniversalClient {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	client, err := Connect(ctx, testRedisAddr, func(o *redis.Options) {
		o.DialTimeout = 500 * time.Millisecond
		o.MaxRetries = -1
	})
	if err != nil {
		t.Skipf("redis not available at %s: %v", testRedisAddr, err)
	}

	flush := func() {
		keys, _ := client.Keys(context.Background(), prefix+":*").Result()
		if len(keys) > 0 {
			client.Del(context.Background(), keys...)
		}
	}
	flush()
	t.Cleanup(func() {
		flush()
		_ = client.Close()
	})
	return client
}

// newOfflineClient builds a client for addr without pinging it.
func newOfflineClient(t *testing.T, addr string) redis.UniversalClient {
	t.Helper()
	opts, err := ParseAddr(addr)
	require.NoError(t, err)
	opts.DialTimeout = 100 * time.Millisecond
	opts.MaxRetries = -1
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewRegistryStore_Panics(t *testing.T) {
	t.Run("client_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "myredis.registry_store.go: client is required", func() {
			NewRegistryStore(nil, "routes")
		})
	})
	t.Run("prefix_empty", func(t *testing.T) {
		client := newOfflineClient(t, testRedisAddr)
		assert.PanicsWithValue(t, "myredis.registry_store.go: prefix is required", func() {
			NewRegistryStore(client, "")
		})
	})
}

func TestRegistryStore_PublishEntriesRemove(t *testing.T) {
	ctx := context.Background()
	client := setupTestRedis(t, "test-routes")
	store := NewRegistryStore(client, "test-routes")

	entries, err := store.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, store.Publish(ctx, "node-a", domain.NewRegistryEntry("worker-a"), time.Minute))
	require.NoError(t, store.Publish(ctx, "node-b", domain.NewRegistryEntry("worker-b"), 0))

	entries, err = store.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.Node]domain.RegistryEntry{
		"node-a": domain.NewRegistryEntry("worker-a"),
		"node-b": domain.NewRegistryEntry("worker-b"),
	}, entries)

	ttl, err := client.TTL(ctx, "test-routes:node-a").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)

	require.NoError(t, store.Remove(ctx, "node-a"))
	require.NoError(t, store.Remove(ctx, "node-a"))
	entries, err = store.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.Node]domain.RegistryEntry{"node-b": domain.NewRegistryEntry("worker-b")}, entries)
}

func TestRegistryStore_EntryExpires(t *testing.T) {
	ctx := context.Background()
	client := setupTestRedis(t, "test-routes-ttl")
	store := NewRegistryStore(client, "test-routes-ttl")

	require.NoError(t, store.Publish(ctx, "node-a", domain.NewRegistryEntry("worker-a"), 100*time.Millisecond))
	assert.Eventually(t, func() bool {
		entries, err := store.Entries(ctx)
		return err == nil && len(entries) == 0
	}, 2*time.Second, 20*time.Millisecond)
}

func TestRegistryStore_SkipsMalformedValues(t *testing.T) {
	ctx := context.Background()
	client := setupTestRedis(t, "test-routes-bad")
	store := NewRegistryStore(client, "test-routes-bad")

	require.NoError(t, client.Set(ctx, "test-routes-bad:broken", "not-json", 0).Err())
	require.NoError(t, client.Set(ctx, "test-routes-bad:empty", `{"member":"empty","route":""}`, 0).Err())
	require.NoError(t, store.Publish(ctx, "node-a", domain.NewRegistryEntry("worker-a"), 0))

	entries, err := store.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.Node]domain.RegistryEntry{"node-a": domain.NewRegistryEntry("worker-a")}, entries)
}

func TestRegistryStore_StoreErrorIsInternal(t *testing.T) {
	client := newOfflineClient(t, "redis://127.0.0.1:1")
	store := NewRegistryStore(client, "routes")

	err := store.Publish(context.Background(), "node-a", domain.NewRegistryEntry("worker-a"), time.Second)
	require.Error(t, err)
	assert.True(t, service.IsInternalServerError(err))

	_, err = store.Entries(context.Background())
	require.Error(t, err)
	assert.True(t, service.IsInternalServerError(err))

	err = store.Remove(context.Background(), "node-a")
	require.Error(t, err)
	assert.True(t, service.IsInternalServerError(err))
}
