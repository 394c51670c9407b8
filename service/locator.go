package service

import (
	"errors"
	"fmt"

	"myrouting/domain"
	"myrouting/interfaces"
)

// ErrLocalRouteNotRegistered is returned by locator constructors when the local member has no registry entry
// (or an entry with an empty route). It is a startup error: a locator without its own route cannot serve the fallback.
var ErrLocalRouteNotRegistered = errors.New("local member has no registered route")

// NewRouteLocator builds the locator selected by cfg.Type. Empty type means primary_owner.
//
// Parameters: cfg: locator config (validated here); ownership: key ownership table; registry: member registry.
// ownership is only required by primary_owner and ranked; registry by every type except none.
//
// Returns: (interfaces.RouteLocator, nil) on success; (nil, *domain.LocatorConfigError) on invalid config;
// (nil, error wrapping ErrLocalRouteNotRegistered) when the local route cannot be read.
//
// Called from cmd/main at startup.
func NewRouteLocator(cfg domain.LocatorConfig, ownership interfaces.KeyOwnership, registry interfaces.MemberRegistry) (interfaces.RouteLocator, error) {
	if err := domain.ValidateLocatorConfig(cfg); err != nil {
		return nil, err
	}
	switch cfg.Type {
	case domain.LocatorRanked:
		return NewRankedRouteLocator(ownership, registry, cfg.Delimiter, cfg.MaxRoutes)
	case domain.LocatorLocal:
		return NewLocalRouteLocator(registry)
	case domain.LocatorNone:
		return NewNoneRouteLocator(), nil
	default:
		return NewPrimaryOwnerRouteLocator(ownership, registry)
	}
}

// readLocalRoute returns the route the local member published. Called once per locator at construction.
func readLocalRoute(registry interfaces.MemberRegistry) (domain.Route, error) {
	local := registry.LocalMember()
	entry, ok := registry.Entry(local)
	if !ok || entry.Route == "" {
		return "", fmt.Errorf("%w: member %q", ErrLocalRouteNotRegistered, local)
	}
	return entry.Route, nil
}
