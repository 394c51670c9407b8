package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"myrouting/domain"
	"myrouting/helpers"
	"myrouting/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ErrRegistrarStarted is returned by RouteRegistrar.Start when called twice.
var ErrRegistrarStarted = errors.New("route registrar already started")

const (
	// publishTimeout bounds each publication, including the first one made by Start.
	publishTimeout = 10 * time.Second
	// removeTimeout bounds the store call made by RouteRegistrar.Close.
	removeTimeout = 5 * time.Second
	// minTTL is the shortest positive ttl; the heartbeat fires every ttl/3.
	minTTL = time.Millisecond
)

// RouteRegistrar publishes the registry entry of the local member and keeps it alive. With a TTL the entry is
// re-published every ttl/3 so it outlives the heartbeat period; without one (ZooKeeper, static) it is published once
// and lives as long as the store session.
type RouteRegistrar struct {
	store  interfaces.RegistryStore
	member domain.Node
	entry  domain.RegistryEntry
	ttl    time.Duration
	logger log.Logger

	mu      sync.Mutex
	started bool
	closed  bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewRouteRegistrar creates a registrar for member with route. Panics on nil store or logger, empty member or route,
// or a ttl that is negative or below one millisecond.
//
// Parameters: ttl: lifetime of the published entry; 0 disables expiry and heartbeats.
//
// Called from cmd/main.
func NewRouteRegistrar(store interfaces.RegistryStore, member domain.Node, route domain.Route, ttl time.Duration, logger log.Logger) *RouteRegistrar {
	if ttl < 0 || (ttl > 0 && ttl < minTTL) {
		panic("service.registrar.go: ttl must be 0 or at least 1ms")
	}
	return &RouteRegistrar{
		store:  helpers.NilPanic(store, "service.registrar.go: store is required"),
		member: domain.Node(helpers.StrPanic(string(member), "service.registrar.go: member is required")),
		entry:  domain.NewRegistryEntry(domain.Route(helpers.StrPanic(string(route), "service.registrar.go: route is required"))),
		ttl:    ttl,
		logger: log.With(helpers.NilPanic(logger, "service.registrar.go: logger is required"), "component", "route_registrar", "member", member),
		done:   make(chan struct{}),
	}
}

// Start publishes the entry synchronously and, when ttl > 0, starts the heartbeat. ctx is the lifetime of the
// heartbeat: it stops when ctx is cancelled or Close is called. Each publication is bounded by publishTimeout.
//
// Returns: nil on success; error wrapping the store error when the first publication fails; ErrRegistrarStarted on a second call.
func (r *RouteRegistrar) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return ErrRegistrarStarted
	}
	if err := r.publish(ctx); err != nil {
		return fmt.Errorf("publish registry entry of %q: %w", r.member, err)
	}
	level.Info(r.logger).Log("msg", "registry entry published", "route", r.entry.Route)
	r.started = true

	if r.ttl <= 0 {
		close(r.done)
		return nil
	}
	hbCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	go r.heartbeat(hbCtx)
	return nil
}

func (r *RouteRegistrar) heartbeat(ctx context.Context) {
	defer close(r.done)
	ticker := time.NewTicker(r.ttl / 3)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.publish(ctx); err != nil && ctx.Err() == nil {
				level.Warn(r.logger).Log("msg", "registry heartbeat failed", "err", err)
			}
		}
	}
}

func (r *RouteRegistrar) publish(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	return r.store.Publish(ctx, r.member, r.entry, r.ttl)
}

// Close stops the heartbeat and removes the entry from the store. Idempotent; a registrar that never started
// removes nothing.
//
// Returns: the store error of the removal, if any.
func (r *RouteRegistrar) Close() error {
	r.mu.Lock()
	if r.closed || !r.started {
		r.closed = true
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	cancel := r.cancel
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	<-r.done

	ctx, cancelRemove := context.WithTimeout(context.Background(), removeTimeout)
	defer cancelRemove()
	if err := r.store.Remove(ctx, r.member); err != nil {
		level.Error(r.logger).Log("msg", "registry entry removal failed", "err", err)
		return err
	}
	level.Info(r.logger).Log("msg", "registry entry removed")
	return nil
}
