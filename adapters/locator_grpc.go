package adapters

import (
	"context"

	"myrouting/helpers"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
)

// LocatorClient calls the myrouting.RouteLocator gRPC service of a myrouting node.
type LocatorClient struct {
	conn grpc.ClientConnInterface
}

// LocatorGRPC creates a LocatorClient over conn. Panics on nil conn.
func LocatorGRPC(conn grpc.ClientConnInterface) *LocatorClient {
	return &LocatorClient{conn: helpers.NilPanic(conn, "adapters.locator_grpc.go: conn is required")}
}

// Locate sends sessionID in the "session-id" header and returns the "route" and "encoded-session-id"
// response headers. A missing header yields "" for that value.
func (c *LocatorClient) Locate(ctx context.Context, sessionID string, opts ...grpc.CallOption) (route, encoded string, err error) {
	ctx = metadata.AppendToOutgoingContext(ctx, helpers.HeaderSessionID, sessionID)
	var header metadata.MD
	opts = append(opts, grpc.Header(&header))
	if err := c.conn.Invoke(ctx, helpers.LocateMethod, &emptypb.Empty{}, &emptypb.Empty{}, opts...); err != nil {
		return "", "", err
	}
	route, _ = helpers.GetHeaderValue(header, helpers.HeaderRoute)
	encoded, _ = helpers.GetHeaderValue(header, helpers.HeaderEncodedSessionID)
	return route, encoded, nil
}
