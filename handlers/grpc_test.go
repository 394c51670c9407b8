package handlers

import (
	"context"
	"net"
	"testing"
	"time"

	"myrouting/domain"
	"myrouting/helpers"
	"myrouting/interfaces/mock"
	"myrouting/service"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// startLocatorServer serves the locate service with the error interceptor on a random local port.
func startLocatorServer(t *testing.T, locator *mock.RouteLocatorMock) *grpc.ClientConn {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	logger := log.NewNopLogger()
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(service.RoutingErrorToGRPCInterceptor(logger)))
	RegisterLocatorServer(srv, NewGrpcServer(service.NewSessionIDCodec(locator, "."), logger))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestNewGrpcServer_Panics(t *testing.T) {
	codec := service.NewSessionIDCodec(&mock.RouteLocatorMock{}, ".")
	t.Run("codec_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "handlers.grpc.go: codec is required", func() {
			NewGrpcServer(nil, log.NewNopLogger())
		})
	})
	t.Run("logger_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "handlers.grpc.go: logger is required", func() {
			NewGrpcServer(codec, nil)
		})
	})
}

func TestGrpcServer_Locate(t *testing.T) {
	locator := &mock.RouteLocatorMock{
		LocateFunc: func(id domain.SessionID) string {
			if id == "no-affinity" {
				return ""
			}
			return "worker-a.worker-b"
		},
	}
	conn := startLocatorServer(t, locator)

	tests := []struct {
		name        string
		md          metadata.MD
		wantCode    codes.Code
		wantRoute   string
		wantEncoded string
		wantLocated domain.SessionID
	}{
		{
			name:        "ok",
			md:          metadata.Pairs(helpers.HeaderSessionID, "abc"),
			wantCode:    codes.OK,
			wantRoute:   "worker-a.worker-b",
			wantEncoded: "abc.worker-a.worker-b",
			wantLocated: "abc",
		},
		{
			name:        "stale_suffix_stripped",
			md:          metadata.Pairs(helpers.HeaderSessionID, " abc.worker-z "),
			wantCode:    codes.OK,
			wantRoute:   "worker-a.worker-b",
			wantEncoded: "abc.worker-a.worker-b",
			wantLocated: "abc",
		},
		{
			name:        "no_affinity",
			md:          metadata.Pairs(helpers.HeaderSessionID, "no-affinity"),
			wantCode:    codes.OK,
			wantRoute:   "",
			wantEncoded: "no-affinity",
			wantLocated: "no-affinity",
		},
		{name: "missing_header", md: metadata.MD{}, wantCode: codes.InvalidArgument},
		{name: "blank_header", md: metadata.Pairs(helpers.HeaderSessionID, "   "), wantCode: codes.InvalidArgument},
		{name: "only_suffix", md: metadata.Pairs(helpers.HeaderSessionID, ".worker-a"), wantCode: codes.InvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(locator.LocateCalls())
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			ctx = metadata.NewOutgoingContext(ctx, tt.md)

			var header metadata.MD
			err := conn.Invoke(ctx, helpers.LocateMethod, &emptypb.Empty{}, &emptypb.Empty{}, grpc.Header(&header))
			require.Equal(t, tt.wantCode, status.Code(err), "err: %v", err)
			if tt.wantCode != codes.OK {
				assert.Len(t, locator.LocateCalls(), before)
				return
			}
			route, _ := helpers.GetHeaderValue(header, helpers.HeaderRoute)
			encoded, _ := helpers.GetHeaderValue(header, helpers.HeaderEncodedSessionID)
			assert.Equal(t, tt.wantRoute, route)
			assert.Equal(t, tt.wantEncoded, encoded)
			calls := locator.LocateCalls()
			require.Len(t, calls, before+1)
			assert.Equal(t, tt.wantLocated, calls[len(calls)-1].SessionID)
		})
	}
}
