package myredis

import (
	"context"
	"encoding/json"
	"time"

	"myrouting/domain"
	"myrouting/helpers"
	"myrouting/interfaces"

	"github.com/go-redis/redis/v8"
)

// registryRecord is the JSON value stored per member.
type registryRecord struct {
	Member string `json:"member"`
	Route  string `json:"route"`
}

// registryStore implements interfaces.RegistryStore over Redis: one key "prefix:member" per member holding
// a JSON record, expiring after the publication TTL so dead members disappear without a leave protocol.
type registryStore struct {
	cache *redisCache[registryRecord]
}

// NewRegistryStore creates the Redis registry store. Panics on nil client or empty prefix.
//
// Called from cmd/main when registry.type=redis.
func NewRegistryStore(client redis.UniversalClient, prefix string) interfaces.RegistryStore {
	client = helpers.NilPanic(client, "myredis.registry_store.go: client is required")
	return &registryStore{
		cache: NewCache[registryRecord](
			client,
			helpers.StrPanic(prefix, "myredis.registry_store.go: prefix is required"),
			func(r registryRecord) ([]byte, error) { return json.Marshal(r) },
			func(b []byte) (registryRecord, error) {
				var r registryRecord
				err := json.Unmarshal(b, &r)
				return r, err
			},
		),
	}
}

func (s *registryStore) Publish(ctx context.Context, member domain.Node, entry domain.RegistryEntry, ttl time.Duration) error {
	return s.cache.WriteValue(ctx, string(member), registryRecord{Member: string(member), Route: string(entry.Route)}, ttl)
}

func (s *registryStore) Remove(ctx context.Context, member domain.Node) error {
	return s.cache.DeleteValue(ctx, string(member))
}

// Entries returns all live records. Records with an empty route are skipped; the member comes from the key.
func (s *registryStore) Entries(ctx context.Context) (map[domain.Node]domain.RegistryEntry, error) {
	records, err := s.cache.ListAllValues(ctx)
	if err != nil {
		return nil, err
	}
	entries := make(map[domain.Node]domain.RegistryEntry, len(records))
	for key, rec := range records {
		if rec.Route == "" {
			continue
		}
		entries[domain.Node(key)] = domain.NewRegistryEntry(domain.Route(rec.Route))
	}
	return entries, nil
}
