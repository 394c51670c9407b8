package helpers

import (
	"testing"

	"myrouting/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrPanic(t *testing.T) {
	t.Run("empty_panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "delimiter is required", func() {
			StrPanic("", "delimiter is required")
		})
	})
	t.Run("whitespace_is_not_empty", func(t *testing.T) {
		assert.Equal(t, " ", StrPanic(" ", "delimiter is required"))
	})
	t.Run("non_empty_returns_value", func(t *testing.T) {
		require.Equal(t, ".", StrPanic(".", "delimiter is required"))
	})
}

func TestNilPanic(t *testing.T) {
	t.Run("nil_interface_panics", func(t *testing.T) {
		var v interface{}
		assert.PanicsWithValue(t, "interface is required", func() {
			NilPanic(v, "interface is required")
		})
	})
	t.Run("nil_map_panics", func(t *testing.T) {
		var m map[domain.Node]domain.Route
		assert.PanicsWithValue(t, "members are required", func() {
			NilPanic(m, "members are required")
		})
	})
	t.Run("nil_pointer_panics", func(t *testing.T) {
		var p *domain.RegistryEntry
		assert.PanicsWithValue(t, "entry is required", func() {
			NilPanic(p, "entry is required")
		})
	})
	t.Run("nil_func_panics", func(t *testing.T) {
		var f func()
		assert.PanicsWithValue(t, "func is required", func() {
			NilPanic(f, "func is required")
		})
	})
	t.Run("empty_slice_returns_value", func(t *testing.T) {
		got := NilPanic([]domain.Node{}, "nodes are required")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
	t.Run("value_type_returns_value", func(t *testing.T) {
		got := NilPanic(domain.Node("node-a"), "node is required")
		require.Equal(t, domain.Node("node-a"), got)
	})
}
