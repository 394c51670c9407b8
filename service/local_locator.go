package service

import (
	"myrouting/domain"
	"myrouting/helpers"
	"myrouting/interfaces"
)

// localRouteLocator always routes to the local member. Used when affinity to data owners is not wanted
// but the front end still needs a stable route per instance.
type localRouteLocator struct {
	localRoute domain.Route
}

// NewLocalRouteLocator creates a locator that returns the local route for every session. Panics on nil registry.
//
// Returns: (interfaces.RouteLocator, nil); (nil, error wrapping ErrLocalRouteNotRegistered) when the local member has no entry.
func NewLocalRouteLocator(registry interfaces.MemberRegistry) (interfaces.RouteLocator, error) {
	route, err := readLocalRoute(helpers.NilPanic(registry, "service.local_locator.go: registry is required"))
	if err != nil {
		return nil, err
	}
	return &localRouteLocator{localRoute: route}, nil
}

func (l *localRouteLocator) Locate(domain.SessionID) string {
	return string(l.localRoute)
}

// noneRouteLocator disables affinity: the route is always empty and session ids are never suffixed.
type noneRouteLocator struct{}

// NewNoneRouteLocator creates a locator that returns "" for every session.
func NewNoneRouteLocator() interfaces.RouteLocator {
	return noneRouteLocator{}
}

func (noneRouteLocator) Locate(domain.SessionID) string {
	return ""
}
