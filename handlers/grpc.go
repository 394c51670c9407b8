package handlers

import (
	"context"

	"myrouting/helpers"
	"myrouting/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
)

// LocatorServer is the server API of the myrouting.RouteLocator gRPC service.
type LocatorServer interface {
	// Locate reads the session id from the "session-id" request header and answers with the "route" and
	// "encoded-session-id" response headers.
	Locate(ctx context.Context, in *emptypb.Empty) (*emptypb.Empty, error)
}

// LocatorServiceDesc is the grpc.ServiceDesc of myrouting.RouteLocator.
var LocatorServiceDesc = grpc.ServiceDesc{
	ServiceName: helpers.LocatorServiceName,
	HandlerType: (*LocatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Locate",
			Handler:    locateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "myrouting/locator",
}

// RegisterLocatorServer registers srv on s.
func RegisterLocatorServer(s grpc.ServiceRegistrar, srv LocatorServer) {
	s.RegisterService(&LocatorServiceDesc, srv)
}

func locateHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LocatorServer).Locate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: helpers.LocateMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LocatorServer).Locate(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// grpcServer implements LocatorServer over the session id codec.
type grpcServer struct {
	codec  *service.SessionIDCodec
	logger log.Logger
}

// NewGrpcServer creates the gRPC locate service. Panics on nil codec or logger.
//
// Called from cmd/main; errors it returns are converted by service.RoutingErrorToGRPCInterceptor.
func NewGrpcServer(codec *service.SessionIDCodec, logger log.Logger) *grpcServer {
	return &grpcServer{
		codec:  helpers.NilPanic(codec, "handlers.grpc.go: codec is required"),
		logger: log.With(helpers.NilPanic(logger, "handlers.grpc.go: logger is required"), "component", "grpc_locator"),
	}
}

// Locate returns service.ErrSessionIDRequired when the session-id header is missing, blank or only a route suffix.
func (s *grpcServer) Locate(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	raw, ok := helpers.GetSessionID(md)
	if !ok {
		return nil, service.ErrSessionIDRequired
	}
	id, route, ok := s.codec.Locate(raw)
	if !ok {
		return nil, service.ErrSessionIDRequired
	}
	header := metadata.Pairs(
		helpers.HeaderRoute, route,
		helpers.HeaderEncodedSessionID, s.codec.Join(id, route),
	)
	if err := grpc.SetHeader(ctx, header); err != nil {
		level.Warn(s.logger).Log("msg", "failed to set response header", "err", err)
		return nil, err
	}
	return &emptypb.Empty{}, nil
}
