package service

import (
	"testing"

	"myrouting/domain"
	"myrouting/interfaces/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrimaryOwnerRouteLocator_Panics(t *testing.T) {
	registry := newRegistryMock("n0", map[domain.Node]domain.Route{"n0": "r0"})
	ownership := newOwnershipMock()

	t.Run("ownership_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.primary_owner_locator.go: ownership is required", func() {
			_, _ = NewPrimaryOwnerRouteLocator(nil, registry)
		})
	})
	t.Run("registry_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.primary_owner_locator.go: registry is required", func() {
			_, _ = NewPrimaryOwnerRouteLocator(ownership, nil)
		})
	})
}

func TestPrimaryOwnerRouteLocator_Locate(t *testing.T) {
	routes := map[domain.Node]domain.Route{"n0": "r0", "n1": "r1", "n2": "r2"}

	tests := []struct {
		name   string
		owners []domain.Node
		want   string
	}{
		{name: "primary_resolves", owners: []domain.Node{"n1", "n2"}, want: "r1"},
		{name: "primary_is_local", owners: []domain.Node{"n0", "n1"}, want: "r0"},
		{name: "primary_unresolved_falls_back_to_local", owners: []domain.Node{"gone", "n1"}, want: "r0"},
		{name: "empty_owners_falls_back_to_local", owners: []domain.Node{}, want: "r0"},
		{name: "nil_owners_falls_back_to_local", owners: nil, want: "r0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewPrimaryOwnerRouteLocator(newOwnershipMock(tt.owners...), newRegistryMock("n0", routes))
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.Locate("sess-1"))
		})
	}
}

func TestPrimaryOwnerRouteLocator_Locate_QueriesSessionKey(t *testing.T) {
	ownership := newOwnershipMock("n1")
	registry := newRegistryMock("n0", map[domain.Node]domain.Route{"n0": "r0", "n1": "r1"})
	l, err := NewPrimaryOwnerRouteLocator(ownership, registry)
	require.NoError(t, err)

	assert.Equal(t, "r1", l.Locate("abc"))
	assert.Equal(t, "r1", l.Locate("abc"))

	calls := ownership.OwnersCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, domain.NewCacheKey("abc"), calls[0].Key)
	assert.Equal(t, calls[0].Key, calls[1].Key)
}

func TestPrimaryOwnerRouteLocator_Locate_LocalRouteCachedAtConstruction(t *testing.T) {
	routes := map[domain.Node]domain.Route{"n0": "r0"}
	registry := newRegistryMock("n0", routes)
	l, err := NewPrimaryOwnerRouteLocator(newOwnershipMock(), registry)
	require.NoError(t, err)

	// The local entry disappearing later does not change the fallback.
	registry.EntryFunc = func(domain.Node) (domain.RegistryEntry, bool) { return domain.RegistryEntry{}, false }
	assert.Equal(t, "r0", l.Locate("sess"))
}

func TestPrimaryOwnerRouteLocator_Locate_OwnersDifferPerKey(t *testing.T) {
	ownership := &mock.KeyOwnershipMock{
		OwnersFunc: func(key domain.CacheKey) []domain.Node {
			if key.SessionID() == "a" {
				return []domain.Node{"n1"}
			}
			return []domain.Node{"n2"}
		},
	}
	registry := newRegistryMock("n0", map[domain.Node]domain.Route{"n0": "r0", "n1": "r1", "n2": "r2"})
	l, err := NewPrimaryOwnerRouteLocator(ownership, registry)
	require.NoError(t, err)

	assert.Equal(t, "r1", l.Locate("a"))
	assert.Equal(t, "r2", l.Locate("b"))
}
