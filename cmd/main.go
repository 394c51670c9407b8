package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myrouting/adapters"
	"myrouting/adapters/consistent"
	"myrouting/adapters/memory"
	"myrouting/adapters/myredis"
	"myrouting/adapters/zookeeper"
	"myrouting/domain"
	"myrouting/handlers"
	"myrouting/interfaces"
	"myrouting/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting myrouting service")

	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"service_port_grpc", config.GRPCPort,
		"node", config.NodeName,
		"route", config.NodeRoute,
		"locator", config.Locator.Type,
		"registry", config.Registry.Type,
	)

	store, storeCloser, err := newRegistryStore(config, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create registry store", "err", err)
		os.Exit(1)
	}
	defer storeCloser.Close()

	var registrar *service.RouteRegistrar
	{
		registrar = service.NewRouteRegistrar(store, config.NodeName, config.NodeRoute, config.Registry.TTL, logger)
		if err := registrar.Start(context.Background()); err != nil {
			level.Error(logger).Log("msg", "Failed to publish local route", "err", err)
			os.Exit(1)
		}
	}

	var (
		ownership *consistent.KeyOwnership
		members   *service.CachedMemberRegistry
	)
	{
		ownership, err = consistent.NewKeyOwnership(config.Ownership, logger)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create ownership table", "err", err)
			os.Exit(1)
		}
		members = service.NewMemberRegistry(store, config.NodeName, config.Registry.RefreshInterval, ownership, logger)
	}

	var codec *service.SessionIDCodec
	{
		locator, err := service.NewRouteLocator(config.Locator, ownership, members)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create route locator", "err", err)
			os.Exit(1)
		}
		codec = service.NewSessionIDCodec(locator, config.Locator.Delimiter)
	}

	var e *echo.Echo
	{
		doc, err := handlers.LoadOpenAPI()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load OpenAPI document", "err", err)
			os.Exit(1)
		}
		validator, err := handlers.NewRequestValidator(doc)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create request validator", "err", err)
			os.Exit(1)
		}
		e = echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.Use(validator)
		service.RegisterErrorHandler(e, logger)
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(codec, store, logger))
	}

	var (
		grpcServer   *grpc.Server
		healthServer *health.Server
	)
	{
		errorCodeOption := grpc.ChainUnaryInterceptor(service.RoutingErrorToGRPCInterceptor(logger))
		grpcServer = grpc.NewServer(errorCodeOption)
		handlers.RegisterLocatorServer(grpcServer, handlers.NewGrpcServer(codec, logger))

		healthServer = health.NewServer()
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
		grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

		reflection.Register(grpcServer)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
	if err != nil {
		level.Error(logger).Log("msg", "Failed to listen", "err", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		level.Info(logger).Log("msg", "Starting gRPC server", "addr", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			level.Error(logger).Log("msg", "gRPC server error", "err", err)
		}
	}()
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	<-quit
	level.Info(logger).Log("msg", "Shutting down...")
	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during HTTP server shutdown", "err", err)
	}
	stopGRPC(shutdownCtx, grpcServer)

	if err := members.Close(); err != nil {
		level.Error(logger).Log("msg", "Error stopping member registry", "err", err)
	}
	if err := registrar.Close(); err != nil {
		level.Error(logger).Log("msg", "Error removing local route", "err", err)
	}
	level.Info(logger).Log("msg", "Server stopped")
}

// newRegistryStore builds the store selected by registry.type and the closer releasing its connection.
func newRegistryStore(config *Config, logger log.Logger) (interfaces.RegistryStore, io.Closer, error) {
	switch config.Registry.Type {
	case domain.RegistryTypeRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		redisClient, err := myredis.Connect(ctx, config.Registry.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		level.Info(logger).Log("msg", "Connected to Redis")
		return myredis.NewRegistryStore(redisClient, config.Registry.Prefix), redisClient, nil
	case domain.RegistryTypeZooKeeper:
		conn, err := zookeeper.Connect(config.Registry.ZooKeeperServers, config.ZooKeeperSessionTimeout)
		if err != nil {
			return nil, nil, err
		}
		return zookeeper.NewRegistryStore(conn, config.Registry.ZooKeeperRoot, logger), closerFunc(conn.Close), nil
	case domain.RegistryTypeHTTP:
		client := &http.Client{Timeout: 10 * time.Second}
		return adapters.RegistryHTTP(config.Registry.HTTPURL, client), closerFunc(client.CloseIdleConnections), nil
	default:
		now := func() time.Time {
			return time.Now().UTC()
		}
		return memory.NewRegistryStore(config.Registry.Members, now), closerFunc(func() {}), nil
	}
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

// stopGRPC waits for in-flight calls until ctx expires, then stops the server hard.
func stopGRPC(ctx context.Context, srv *grpc.Server) {
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		srv.Stop()
	}
}
