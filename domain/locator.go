package domain

import "strings"

// LocatorType selects how a session id is turned into a route.
type LocatorType string

const (
	// LocatorPrimaryOwner routes to the primary owner of the session, falling back to the local route.
	LocatorPrimaryOwner LocatorType = "primary_owner"
	// LocatorRanked routes to a delimited list of owner routes, primary first.
	LocatorRanked LocatorType = "ranked"
	// LocatorLocal always routes to the local member.
	LocatorLocal LocatorType = "local"
	// LocatorNone disables affinity: the route is always empty.
	LocatorNone LocatorType = "none"
)

const (
	// DefaultDelimiter separates routes in a ranked result and a session id from its route suffix.
	DefaultDelimiter = "."
	// DefaultMaxRoutes is the ranked cardinality used when none is configured.
	DefaultMaxRoutes = 3
)

// LocatorConfig is the static configuration of a route locator. Delimiter and MaxRoutes are only read
// by the ranked locator (Delimiter is also used by the session id codec).
type LocatorConfig struct {
	Type      LocatorType
	Delimiter string
	MaxRoutes int
}

// DefaultLocatorConfig returns primary-owner affinity with the default delimiter and max routes.
func DefaultLocatorConfig() LocatorConfig {
	return LocatorConfig{
		Type:      LocatorPrimaryOwner,
		Delimiter: DefaultDelimiter,
		MaxRoutes: DefaultMaxRoutes,
	}
}

// LegacyLocatorConfig returns the preset of the legacy routing provider: primary-owner affinity with a
// single route and the default delimiter. Selected in YAML with locator.preset=legacy.
func LegacyLocatorConfig() LocatorConfig {
	return LocatorConfig{
		Type:      LocatorPrimaryOwner,
		Delimiter: DefaultDelimiter,
		MaxRoutes: 1,
	}
}

// ValidateLocatorConfig validates the locator type and, for ranked locators, the delimiter and max routes.
//
// Parameter cfg: locator config (usually from YAML via cmd.LoadConfig); empty Type is allowed and means primary_owner.
//
// Returns: nil when config is valid; *LocatorConfigError with Field and Reason on the first error found.
//
// Called from service.NewRouteLocator, service.NewRankedRouteLocator and cmd.LoadConfig.
func ValidateLocatorConfig(cfg LocatorConfig) error {
	switch cfg.Type {
	case "", LocatorPrimaryOwner, LocatorLocal, LocatorNone:
		return nil
	case LocatorRanked:
	default:
		return &LocatorConfigError{Field: "type", Reason: "must be primary_owner|ranked|local|none"}
	}
	if cfg.Delimiter == "" {
		return &LocatorConfigError{Field: "delimiter", Reason: "must be non-empty for ranked locator"}
	}
	if strings.TrimSpace(cfg.Delimiter) == "" {
		return &LocatorConfigError{Field: "delimiter", Reason: "must not be whitespace"}
	}
	if cfg.MaxRoutes < 1 {
		return &LocatorConfigError{Field: "max_routes", Reason: "must be at least 1"}
	}
	return nil
}

// LocatorConfigError is returned by ValidateLocatorConfig when a locator setting is invalid.
type LocatorConfigError struct {
	Field  string
	Reason string
}

// Error returns a string like "locator.max_routes: must be at least 1".
func (e *LocatorConfigError) Error() string {
	return "locator." + e.Field + ": " + e.Reason
}
