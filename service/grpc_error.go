package service

import (
	"context"
	"errors"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrSessionIDRequired is returned by the gRPC locate handler when the session-id header is missing or blank.
var ErrSessionIDRequired = errors.New("missing session-id")

const msgInternalError = "internal error"

// myErrorCodeToGRPCCode maps MyError codes to gRPC status codes.
func myErrorCodeToGRPCCode(code string) codes.Code {
	switch code {
	case ErrBadParameter:
		return codes.InvalidArgument
	case ErrEntityNotFound:
		return codes.NotFound
	case ErrInternalServerError:
		return codes.Internal
	default:
		return codes.Unknown
	}
}

// RoutingErrorToGRPC converts a handler error to a gRPC status error: ErrSessionIDRequired → InvalidArgument;
// MyError → its mapped code and message; an existing status other than Unknown is kept; anything else → Internal.
func RoutingErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrSessionIDRequired) {
		return status.Error(codes.InvalidArgument, ErrSessionIDRequired.Error())
	}
	if myErr := ToMyError(err); myErr != nil {
		return status.Error(myErrorCodeToGRPCCode(myErr.Code), myErr.Message)
	}
	if s, ok := status.FromError(err); ok && s.Code() != codes.Unknown {
		return s.Err()
	}
	return status.Error(codes.Internal, msgInternalError)
}

// RoutingErrorToGRPCInterceptor returns a unary server interceptor that converts handler errors with
// RoutingErrorToGRPC. Client errors are logged at info, the rest at error.
//
// Called from cmd/main when creating the gRPC server (grpc.ChainUnaryInterceptor).
func RoutingErrorToGRPCInterceptor(logger log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		converted := RoutingErrorToGRPC(err)
		if status.Code(converted) == codes.Internal {
			level.Error(logger).Log("msg", "gRPC handler error", "method", info.FullMethod, "err", err)
		} else {
			level.Info(logger).Log("msg", "gRPC handler error", "method", info.FullMethod, "err", err)
		}
		return resp, converted
	}
}
