package interfaces

import "myrouting/domain"

// KeyOwnership reports which cluster members own a cache key under the current replication topology.
// It is the view of the data grid the locators consult; the grid itself is not part of this module.
//
// Implemented by adapters/consistent.KeyOwnership. Called from the route locators in service on every Locate.
//
//go:generate moq -stub -out mock/key_ownership.go -pkg mock . KeyOwnership
type KeyOwnership interface {
	// Owners returns the owners of key in preference order (primary first, then backups).
	// Parameter key: cache key derived from a session id via domain.NewCacheKey.
	// Returns: the ordered owner list; shorter than the configured owner count when the grid is degraded; never nil (empty slice when no owner is known).
	// Called from service.primaryOwnerRouteLocator.Locate and service.rankedRouteLocator.Locate.
	Owners(key domain.CacheKey) []domain.Node
}
