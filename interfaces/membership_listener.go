package interfaces

import "myrouting/domain"

// MembershipListener is notified with the current member set after each registry refresh.
// Implemented by adapters/consistent.KeyOwnership so key ownership follows registry membership.
//
//go:generate moq -stub -out mock/membership_listener.go -pkg mock . MembershipListener
type MembershipListener interface {
	MembersChanged(members []domain.Node)
}
