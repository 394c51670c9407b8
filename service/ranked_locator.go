package service

import (
	"slices"
	"strings"

	"myrouting/domain"
	"myrouting/helpers"
	"myrouting/interfaces"
)

// rankedRouteLocator implements interfaces.RouteLocator. It returns up to maxRoutes distinct owner routes in
// ownership order joined by delimiter, so a front end can fail over without asking the cluster again.
// Owners without a registry entry are skipped. The local route is offered as a last candidate when the
// local member does not own the key.
type rankedRouteLocator struct {
	ownership  interfaces.KeyOwnership
	registry   interfaces.MemberRegistry
	local      domain.Node
	localRoute domain.Route
	delimiter  string
	maxRoutes  int
}

// NewRankedRouteLocator creates the ranked locator. Panics on nil ownership or registry.
//
// Parameters: ownership, registry: collaborators; delimiter: separator between routes (non-empty, not whitespace,
// must not occur inside a route); maxRoutes: maximum number of routes returned (>= 1).
//
// Returns: (interfaces.RouteLocator, nil); (nil, *domain.LocatorConfigError) on invalid delimiter or maxRoutes;
// (nil, error wrapping ErrLocalRouteNotRegistered) when the local member has no entry.
//
// Called from NewRouteLocator.
func NewRankedRouteLocator(ownership interfaces.KeyOwnership, registry interfaces.MemberRegistry, delimiter string, maxRoutes int) (interfaces.RouteLocator, error) {
	l := &rankedRouteLocator{
		ownership: helpers.NilPanic(ownership, "service.ranked_locator.go: ownership is required"),
		registry:  helpers.NilPanic(registry, "service.ranked_locator.go: registry is required"),
		delimiter: delimiter,
		maxRoutes: maxRoutes,
	}
	cfg := domain.LocatorConfig{Type: domain.LocatorRanked, Delimiter: delimiter, MaxRoutes: maxRoutes}
	if err := domain.ValidateLocatorConfig(cfg); err != nil {
		return nil, err
	}
	route, err := readLocalRoute(l.registry)
	if err != nil {
		return nil, err
	}
	l.local = l.registry.LocalMember()
	l.localRoute = route
	return l, nil
}

// Locate returns the delimited ranked routes for sessionID.
//
// Returns: one to maxRoutes routes, primary first, joined by the delimiter. Never empty, never fails.
// With maxRoutes=1 the result never contains the delimiter.
//
// Called from SessionIDCodec.Encode, the HTTP handlers and the gRPC locate service.
func (l *rankedRouteLocator) Locate(sessionID domain.SessionID) string {
	owners := l.ownership.Owners(domain.NewCacheKey(sessionID))
	routes := make([]string, 0, l.maxRoutes)
	localIsOwner := slices.Contains(owners, l.local)
	for _, owner := range owners {
		if len(routes) == l.maxRoutes {
			break
		}
		entry, ok := l.registry.Entry(owner)
		if !ok || entry.Route == "" {
			continue
		}
		route := string(entry.Route)
		if slices.Contains(routes, route) {
			continue
		}
		routes = append(routes, route)
	}
	if !localIsOwner && len(routes) < l.maxRoutes && !slices.Contains(routes, string(l.localRoute)) {
		routes = append(routes, string(l.localRoute))
	}
	if len(routes) == 0 {
		return string(l.localRoute)
	}
	return strings.Join(routes, l.delimiter)
}
