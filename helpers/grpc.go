package helpers

// LocatorServiceName is the gRPC service exposing route lookups.
const LocatorServiceName = "myrouting.RouteLocator"

// LocateMethod is the full gRPC method name of the unary route lookup.
// Request and response are google.protobuf.Empty; the session id and the route travel in metadata.
const LocateMethod = "/" + LocatorServiceName + "/Locate"
