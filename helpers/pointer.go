package helpers

import "reflect"

// StrPanic panics with panicMessage if p is empty (p == "" only, no TrimSpace); otherwise returns p.
//
// Called from constructors that need a required string: service.NewSessionIDCodec (delimiter),
// adapters/myredis.NewRegistryStore (prefix), adapters/zookeeper.NewRegistryStore (root), cmd.LoadConfig (CONFIG_PATH).
func StrPanic(p string, panicMessage string) string {
	if p == "" {
		panic(panicMessage)
	}
	return p
}

// NilPanic panics with panicMessage if v is nil (nil interface, pointer, slice, map, chan, func); otherwise returns v.
//
// Parameters: v: value to check; panicMessage: panic value, conventionally "pkg.file.go: X is required".
//
// Returns: v unchanged when non-nil.
//
// Called from every service and adapter constructor when validating required dependencies.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// isNil reports whether v is nil or a typed nil pointer/slice/map/chan/func/interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
