package service

import (
	"myrouting/domain"
	"myrouting/helpers"
	"myrouting/interfaces"
)

// primaryOwnerRouteLocator implements interfaces.RouteLocator. It routes a session to the route of the primary
// owner of the session's cache key and falls back to the local route whenever that route is unknown
// (empty owner list, owner without registry entry). Holds the collaborators and the local route read at construction.
type primaryOwnerRouteLocator struct {
	ownership  interfaces.KeyOwnership
	registry   interfaces.MemberRegistry
	localRoute domain.Route
}

// NewPrimaryOwnerRouteLocator creates the primary-owner locator and caches the local route. Panics on nil ownership or registry.
//
// Parameters: ownership: key ownership table (e.g. adapters/consistent); registry: member registry (e.g. service.NewMemberRegistry).
//
// Returns: (interfaces.RouteLocator, nil); (nil, error wrapping ErrLocalRouteNotRegistered) when the local member has no entry yet.
//
// Called from NewRouteLocator.
func NewPrimaryOwnerRouteLocator(ownership interfaces.KeyOwnership, registry interfaces.MemberRegistry) (interfaces.RouteLocator, error) {
	l := &primaryOwnerRouteLocator{
		ownership: helpers.NilPanic(ownership, "service.primary_owner_locator.go: ownership is required"),
		registry:  helpers.NilPanic(registry, "service.primary_owner_locator.go: registry is required"),
	}
	route, err := readLocalRoute(l.registry)
	if err != nil {
		return nil, err
	}
	l.localRoute = route
	return l, nil
}

// Locate returns the route of the primary owner of sessionID, or the local route when it cannot be resolved.
//
// Parameter sessionID: opaque session id; never interpreted beyond key derivation.
//
// Returns: a non-empty route. Never fails and never mutates the collaborators.
//
// Called from SessionIDCodec.Encode, the HTTP handlers and the gRPC locate service.
func (l *primaryOwnerRouteLocator) Locate(sessionID domain.SessionID) string {
	owners := l.ownership.Owners(domain.NewCacheKey(sessionID))
	if len(owners) == 0 {
		return string(l.localRoute)
	}
	entry, ok := l.registry.Entry(owners[0])
	if !ok || entry.Route == "" {
		return string(l.localRoute)
	}
	return string(entry.Route)
}
