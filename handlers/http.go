// Package handlers contains the HTTP handlers of myrouting. The routes and payloads are described by
// openapi/myrouting.openapi.yaml, which is also used to validate incoming requests.
package handlers

import (
	"fmt"
	"net/http"

	"myrouting/helpers"
	"myrouting/interfaces"
	"myrouting/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface.
type HTTPServer struct {
	codec  *service.SessionIDCodec
	store  interfaces.RegistryStore
	logger log.Logger
}

// NewHTTPServer creates a new HTTPServer. Panics on nil dependencies.
func NewHTTPServer(codec *service.SessionIDCodec, store interfaces.RegistryStore, logger log.Logger) *HTTPServer {
	return &HTTPServer{
		codec:  helpers.NilPanic(codec, "handlers.http.go: codec is required"),
		store:  helpers.NilPanic(store, "handlers.http.go: store is required"),
		logger: log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer"),
	}
}

// LocateRoute (GET /v1/routes/{session_id}) strips any route suffix from the session id and locates it.
// Returns 400 when nothing is left of the id once the suffix is removed.
func (h *HTTPServer) LocateRoute(ectx echo.Context, sessionId string) error {
	id, route, ok := h.codec.Locate(sessionId)
	if !ok {
		return service.NewBadParameterError("session_id is required", nil)
	}
	return ectx.JSON(http.StatusOK, toRouteResponse(id, route, h.codec.Join(id, route)))
}

// GetEntries (GET /v1/entries) returns the registry entries, sorted by member.
func (h *HTTPServer) GetEntries(ectx echo.Context) error {
	entries, err := h.store.Entries(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("getEntries failed to list registry entries, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, toEntriesResponse(entries))
}

// RegisterMember (POST /v1/register) publishes an entry for a member that cannot reach the store itself.
func (h *HTTPServer) RegisterMember(ectx echo.Context) error {
	var req RegisterRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	member, entry, ttl, err := fromRegisterRequest(req)
	if err != nil {
		return err
	}
	if err := h.store.Publish(ectx.Request().Context(), member, entry, ttl); err != nil {
		return fmt.Errorf("registerMember failed to publish entry of %q, err: %w", member, err)
	}
	return ectx.NoContent(http.StatusOK)
}

// UnregisterMember (POST /v1/unregister/{member}) removes the entry of member.
func (h *HTTPServer) UnregisterMember(ectx echo.Context, member string) error {
	if err := h.store.Remove(ectx.Request().Context(), fromMember(member)); err != nil {
		return fmt.Errorf("unregisterMember failed to remove entry of %q, err: %w", member, err)
	}
	return ectx.NoContent(http.StatusOK)
}
