package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"myrouting/domain"
	"myrouting/helpers"
	"myrouting/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/zhangyunhao116/skipmap"
)

// CachedMemberRegistry implements interfaces.MemberRegistry over a RegistryStore. Entries are served from an
// in-memory snapshot (skipmap, lock-free reads) that a background loop refreshes every interval. A failed
// refresh is logged and the previous snapshot kept. After each refresh that changes the member set, the sorted
// member list is passed to the MembershipListener (the ownership table), so topology follows the registry.
type CachedMemberRegistry struct {
	store    interfaces.RegistryStore
	local    domain.Node
	interval time.Duration
	listener interfaces.MembershipListener
	logger   log.Logger

	entries *skipmap.FuncMap[domain.Node, domain.RegistryEntry]

	mu      sync.Mutex
	members []domain.Node
	stop    chan struct{}
	done    chan struct{}
	closed  bool
}

// NewMemberRegistry creates the cached registry, runs the first refresh synchronously and starts the refresh loop.
// Panics on nil store, listener or logger, or empty local.
//
// Parameters: store: shared registry storage; local: identity of this member; interval: refresh period (> 0);
// listener: receives member-set changes; logger: refresh errors are logged.
//
// Returns: *CachedMemberRegistry; stop it with Close.
//
// Called from cmd/main after the local entry has been published by RouteRegistrar.Start.
func NewMemberRegistry(
	store interfaces.RegistryStore,
	local domain.Node,
	interval time.Duration,
	listener interfaces.MembershipListener,
	logger log.Logger,
) *CachedMemberRegistry {
	r := &CachedMemberRegistry{
		store:    helpers.NilPanic(store, "service.member_registry.go: store is required"),
		local:    domain.Node(helpers.StrPanic(string(local), "service.member_registry.go: local member is required")),
		interval: interval,
		listener: helpers.NilPanic(listener, "service.member_registry.go: listener is required"),
		logger:   log.With(helpers.NilPanic(logger, "service.member_registry.go: logger is required"), "component", "member_registry"),
		entries: skipmap.NewFunc[domain.Node, domain.RegistryEntry](func(a, b domain.Node) bool {
			return a < b
		}),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	if r.interval <= 0 {
		panic("service.member_registry.go: interval must be positive")
	}
	_ = r.Refresh(context.Background())
	go r.refreshLoop()
	return r
}

// LocalMember returns the identity of this member.
func (r *CachedMemberRegistry) LocalMember() domain.Node {
	return r.local
}

// Entry returns the snapshot entry of member; (zero, false) when the member has not published.
func (r *CachedMemberRegistry) Entry(member domain.Node) (domain.RegistryEntry, bool) {
	return r.entries.Load(member)
}

// Members returns the sorted members of the current snapshot.
func (r *CachedMemberRegistry) Members() []domain.Node {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.members)
}

// Refresh reads all entries from the store and replaces the snapshot. On store error the snapshot is left
// untouched and the error is logged and returned.
//
// Called from NewMemberRegistry, refreshLoop and tests.
func (r *CachedMemberRegistry) Refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()
	fresh, err := r.store.Entries(ctx)
	if err != nil {
		level.Warn(r.logger).Log("msg", "registry refresh failed, keeping previous snapshot", "err", err)
		return err
	}

	members := make([]domain.Node, 0, len(fresh))
	for member, entry := range fresh {
		r.entries.Store(member, entry)
		members = append(members, member)
	}
	r.entries.Range(func(member domain.Node, _ domain.RegistryEntry) bool {
		if _, ok := fresh[member]; !ok {
			r.entries.Delete(member)
		}
		return true
	})
	slices.Sort(members)

	r.mu.Lock()
	changed := !slices.Equal(r.members, members)
	r.members = members
	r.mu.Unlock()

	if changed {
		level.Info(r.logger).Log("msg", "registry members changed", "members", len(members))
		r.listener.MembersChanged(slices.Clone(members))
	}
	return nil
}

// refreshLoop calls Refresh every interval until Close.
func (r *CachedMemberRegistry) refreshLoop() {
	defer close(r.done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			_ = r.Refresh(context.Background())
		}
	}
}

// Close stops the refresh loop and waits for it to exit. Idempotent. The last snapshot stays readable.
func (r *CachedMemberRegistry) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.mu.Unlock()
	close(r.stop)
	<-r.done
	return nil
}
