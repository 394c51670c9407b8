package interfaces

import "myrouting/domain"

// MemberRegistry maps cluster members to the registry entries (routes) they published.
// Entries appear when a member starts publishing and disappear when it leaves; a missing entry means
// "no known route for that member", never an error.
//
// Implemented by service.memberRegistry (snapshot refreshed from a RegistryStore).
// Called from the route locators in service at construction (local route) and on every Locate.
//
//go:generate moq -stub -out mock/member_registry.go -pkg mock . MemberRegistry
type MemberRegistry interface {
	// LocalMember returns the identity of the member this process runs as.
	LocalMember() domain.Node

	// Entry returns the entry published by member.
	// Returns: (entry, true) when the member has a published entry; (domain.RegistryEntry{}, false) otherwise.
	Entry(member domain.Node) (domain.RegistryEntry, bool)
}
