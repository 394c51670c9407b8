package service

import (
	"strings"

	"myrouting/domain"
	"myrouting/helpers"
	"myrouting/interfaces"
)

// SessionIDCodec appends the located route to a session id and strips it again, so a load balancer can route
// on the suffix of the cookie value while the application keeps seeing the bare id.
type SessionIDCodec struct {
	locator   interfaces.RouteLocator
	delimiter string
}

// NewSessionIDCodec creates a codec over locator. Panics on nil locator or empty delimiter.
//
// Called from cmd/main; the delimiter is LocatorConfig.Delimiter.
func NewSessionIDCodec(locator interfaces.RouteLocator, delimiter string) *SessionIDCodec {
	return &SessionIDCodec{
		locator:   helpers.NilPanic(locator, "service.session_id_codec.go: locator is required"),
		delimiter: helpers.StrPanic(delimiter, "service.session_id_codec.go: delimiter is required"),
	}
}

// Encode returns id followed by the delimiter and the located route. When the locator yields no route, id is returned as is.
func (c *SessionIDCodec) Encode(id domain.SessionID) string {
	return c.Join(id, c.locator.Locate(id))
}

// Join appends route to id the way Encode does, for callers that already located id.
func (c *SessionIDCodec) Join(id domain.SessionID, route string) string {
	if route == "" {
		return string(id)
	}
	return string(id) + c.delimiter + route
}

// Decode strips the route suffix: everything from the first delimiter on. Ids without a delimiter are returned unchanged.
func (c *SessionIDCodec) Decode(encoded string) domain.SessionID {
	if i := strings.Index(encoded, c.delimiter); i >= 0 {
		return domain.SessionID(encoded[:i])
	}
	return domain.SessionID(encoded)
}

// Locate decodes encoded and locates the bare id. Returns ok=false without consulting the locator when
// nothing is left of the id once the suffix is removed.
func (c *SessionIDCodec) Locate(encoded string) (id domain.SessionID, route string, ok bool) {
	id = c.Decode(encoded)
	if id == "" {
		return "", "", false
	}
	return id, c.locator.Locate(id), true
}
