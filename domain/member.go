package domain

// Node identifies a cluster member (typically its transport address). Nodes compare with ==.
type Node string

// String implements fmt.Stringer; the consistent-hash table also uses it as the member name.
func (n Node) String() string {
	return string(n)
}

// Route is the name the request-routing tier knows a member by, e.g. a load-balancer worker name.
// It is a logical name published through the registry, not necessarily a valid Node.
type Route string

// RegistryEntry is the datum a member publishes about itself into the member registry.
// It is keyed by the publishing member; the route is the only payload.
type RegistryEntry struct {
	Route Route
}

// NewRegistryEntry creates the entry a member publishes for the given route.
func NewRegistryEntry(route Route) RegistryEntry {
	return RegistryEntry{Route: route}
}
