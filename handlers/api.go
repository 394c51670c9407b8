package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// RouteResponse is the body of GET /v1/routes/{session_id}.
type RouteResponse struct {
	SessionId        string `json:"session_id"`
	Route            string `json:"route"`
	EncodedSessionId string `json:"encoded_session_id"`
}

// EntryInfo is one published registry entry.
type EntryInfo struct {
	Member string `json:"member"`
	Route  string `json:"route"`
}

// EntriesResponse is the body of GET /v1/entries.
type EntriesResponse struct {
	Entries []EntryInfo `json:"entries"`
}

// RegisterRequest is the body of POST /v1/register. TtlMs 0 publishes without expiry.
type RegisterRequest struct {
	Member string `json:"member"`
	Route  string `json:"route"`
	TtlMs  int    `json:"ttl_ms,omitempty"`
}

// ServerInterface lists the operations of openapi/myrouting.openapi.yaml.
type ServerInterface interface {
	// (GET /v1/routes/{session_id})
	LocateRoute(ctx echo.Context, sessionId string) error
	// (GET /v1/entries)
	GetEntries(ctx echo.Context) error
	// (POST /v1/register)
	RegisterMember(ctx echo.Context) error
	// (POST /v1/unregister/{member})
	UnregisterMember(ctx echo.Context, member string) error
}

// ServerInterfaceWrapper binds path parameters and calls the ServerInterface.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// LocateRoute converts echo context to params.
func (w *ServerInterfaceWrapper) LocateRoute(ctx echo.Context) error {
	var sessionId string
	err := runtime.BindStyledParameterWithOptions("simple", "session_id", ctx.Param("session_id"), &sessionId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter session_id: %s", err))
	}
	return w.Handler.LocateRoute(ctx, sessionId)
}

// GetEntries converts echo context to params.
func (w *ServerInterfaceWrapper) GetEntries(ctx echo.Context) error {
	return w.Handler.GetEntries(ctx)
}

// RegisterMember converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterMember(ctx echo.Context) error {
	return w.Handler.RegisterMember(ctx)
}

// UnregisterMember converts echo context to params.
func (w *ServerInterfaceWrapper) UnregisterMember(ctx echo.Context) error {
	var member string
	err := runtime.BindStyledParameterWithOptions("simple", "member", ctx.Param("member"), &member, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter member: %s", err))
	}
	return w.Handler.UnregisterMember(ctx, member)
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used to register routes.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/v1/routes/:session_id", wrapper.LocateRoute)
	router.GET(baseURL+"/v1/entries", wrapper.GetEntries)
	router.POST(baseURL+"/v1/register", wrapper.RegisterMember)
	router.POST(baseURL+"/v1/unregister/:member", wrapper.UnregisterMember)
}
