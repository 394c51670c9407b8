package interfaces

import (
	"context"
	"time"

	"myrouting/domain"
)

// RegistryStore is the shared storage members publish their registry entries into.
// Entries of members that stop publishing must disappear on their own (TTL or ephemeral nodes).
//
// Implemented by adapters/myredis, adapters/zookeeper, adapters/memory and adapters.RegistryHTTP. Called from
// service.routeRegistrar (Publish, Remove), service.memberRegistry (Entries) and the echo handlers.
//
//go:generate moq -stub -out mock/registry_store.go -pkg mock . RegistryStore
type RegistryStore interface {
	// Publish writes entry for member. ttl bounds the life of the entry when the backend supports expiry; 0 means no expiry.
	// Returns: nil on success; service.MyError with internal_server_error on storage failure.
	Publish(ctx context.Context, member domain.Node, entry domain.RegistryEntry, ttl time.Duration) error

	// Remove deletes the entry of member. Removing a missing entry is not an error.
	Remove(ctx context.Context, member domain.Node) error

	// Entries returns every published entry keyed by member. An empty registry yields an empty map and nil error.
	Entries(ctx context.Context) (map[domain.Node]domain.RegistryEntry, error)
}
