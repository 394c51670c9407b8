package interfaces

import "myrouting/domain"

// RouteLocator resolves a session id to the route(s) affinity-routed requests should target.
// Single-route locators return one route; ranked locators return a delimiter-joined list, primary first.
//
// Implemented by the locators in service (primary owner, ranked, local, none). Called from
// service.SessionIDCodec, the echo handlers and the gRPC locate service.
//
//go:generate moq -stub -out mock/route_locator.go -pkg mock . RouteLocator
type RouteLocator interface {
	// Locate returns the route for sessionID. It never fails: unknown owners fall back to the local route.
	Locate(sessionID domain.SessionID) string
}
