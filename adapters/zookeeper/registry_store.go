// Package zookeeper implements interfaces.RegistryStore over ZooKeeper ephemeral znodes: every member owns
// root/<member> for the lifetime of its session, so a crashed member's entry disappears with its session.
package zookeeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"myrouting/domain"
	"myrouting/helpers"
	"myrouting/interfaces"
	"myrouting/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-zookeeper/zk"
)

// connectedPollInterval is how often Publish checks the session state while waiting for a connection.
const connectedPollInterval = 100 * time.Millisecond

// Conn is the subset of *zk.Conn the registry store uses.
type Conn interface {
	Exists(path string) (bool, *zk.Stat, error)
	Create(path string, data []byte, flags int32, acl []zk.ACL) (string, error)
	Set(path string, data []byte, version int32) (*zk.Stat, error)
	Get(path string) ([]byte, *zk.Stat, error)
	Children(path string) ([]string, *zk.Stat, error)
	Delete(path string, version int32) error
	State() zk.State
	Close()
}

// Connect opens a ZooKeeper session. The session is established in the background; Publish waits for it.
func Connect(servers []string, sessionTimeout time.Duration) (*zk.Conn, error) {
	conn, _, err := zk.Connect(servers, sessionTimeout)
	if err != nil {
		return nil, fmt.Errorf("zk connect: %w", err)
	}
	return conn, nil
}

type znodeRecord struct {
	Route string `json:"route"`
}

type registryStore struct {
	conn   Conn
	root   string
	logger log.Logger
}

// NewRegistryStore creates the ZooKeeper registry store under root (e.g. "/myrouting/members"). Panics on nil conn
// or logger, or a root that is not absolute.
//
// Called from cmd/main when registry.type=zookeeper.
func NewRegistryStore(conn Conn, root string, logger log.Logger) interfaces.RegistryStore {
	root = helpers.StrPanic(root, "zookeeper.registry_store.go: root is required")
	if !strings.HasPrefix(root, "/") {
		panic("zookeeper.registry_store.go: root must start with /")
	}
	return &registryStore{
		conn:   helpers.NilPanic(conn, "zookeeper.registry_store.go: conn is required"),
		root:   path.Clean(root),
		logger: log.With(helpers.NilPanic(logger, "zookeeper.registry_store.go: logger is required"), "component", "zookeeper_registry"),
	}
}

// Publish creates the ephemeral znode of member, or overwrites its data when it already exists. ttl is ignored:
// the entry lives as long as the ZooKeeper session.
func (s *registryStore) Publish(ctx context.Context, member domain.Node, entry domain.RegistryEntry, _ time.Duration) error {
	if err := s.waitConnected(ctx); err != nil {
		return service.NewInternalServerError("ZooKeeper not connected", err)
	}
	if err := s.ensurePath(s.root); err != nil {
		return service.NewInternalServerError("ZooKeeper create root error", fmt.Errorf("ensure %s: %w", s.root, err))
	}
	data, err := json.Marshal(znodeRecord{Route: string(entry.Route)})
	if err != nil {
		return service.NewInternalServerError("ZooKeeper marshal entry error", err)
	}
	p := s.memberPath(member)
	_, err = s.conn.Create(p, data, zk.FlagEphemeral, zk.WorldACL(zk.PermAll))
	if errors.Is(err, zk.ErrNodeExists) {
		_, err = s.conn.Set(p, data, -1)
	}
	if err != nil {
		return service.NewInternalServerError("ZooKeeper write entry error", fmt.Errorf("write %s: %w", p, err))
	}
	return nil
}

// Remove deletes the znode of member; a missing znode is not an error.
func (s *registryStore) Remove(_ context.Context, member domain.Node) error {
	p := s.memberPath(member)
	if err := s.conn.Delete(p, -1); err != nil && !errors.Is(err, zk.ErrNoNode) {
		return service.NewInternalServerError("ZooKeeper delete entry error", fmt.Errorf("delete %s: %w", p, err))
	}
	return nil
}

// Entries reads every child of root. Children that vanish between listing and reading, or hold malformed data, are skipped.
func (s *registryStore) Entries(_ context.Context) (map[domain.Node]domain.RegistryEntry, error) {
	children, _, err := s.conn.Children(s.root)
	if errors.Is(err, zk.ErrNoNode) {
		return map[domain.Node]domain.RegistryEntry{}, nil
	}
	if err != nil {
		return nil, service.NewInternalServerError("ZooKeeper list entries error", fmt.Errorf("children %s: %w", s.root, err))
	}

	entries := make(map[domain.Node]domain.RegistryEntry, len(children))
	for _, child := range children {
		member, err := url.PathUnescape(child)
		if err != nil {
			continue
		}
		data, _, err := s.conn.Get(path.Join(s.root, child))
		if errors.Is(err, zk.ErrNoNode) {
			continue
		}
		if err != nil {
			return nil, service.NewInternalServerError("ZooKeeper read entry error", fmt.Errorf("get %s: %w", child, err))
		}
		var rec znodeRecord
		if err := json.Unmarshal(data, &rec); err != nil || rec.Route == "" {
			level.Debug(s.logger).Log("msg", "skipping malformed registry znode", "member", member, "err", err)
			continue
		}
		entries[domain.Node(member)] = domain.NewRegistryEntry(domain.Route(rec.Route))
	}
	return entries, nil
}

func (s *registryStore) memberPath(member domain.Node) string {
	return s.root + "/" + url.PathEscape(string(member))
}

// ensurePath creates every missing persistent znode along p.
func (s *registryStore) ensurePath(p string) error {
	cur := ""
	for _, part := range strings.Split(p, "/") {
		if part == "" {
			continue
		}
		cur = cur + "/" + part
		exists, _, err := s.conn.Exists(cur)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := s.conn.Create(cur, nil, 0, zk.WorldACL(zk.PermAll)); err != nil && !errors.Is(err, zk.ErrNodeExists) {
			return err
		}
	}
	return nil
}

// waitConnected blocks until the session is usable or ctx is done.
func (s *registryStore) waitConnected(ctx context.Context) error {
	ticker := time.NewTicker(connectedPollInterval)
	defer ticker.Stop()
	for {
		st := s.conn.State()
		if st == zk.StateConnected || st == zk.StateHasSession {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("zk: not connected, state=%v: %w", st, ctx.Err())
		case <-ticker.C:
		}
	}
}
