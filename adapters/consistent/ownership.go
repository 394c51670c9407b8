// Package consistent implements interfaces.KeyOwnership over a bounded-load consistent-hash partition table.
package consistent

import (
	"sync"

	"myrouting/domain"

	"github.com/buraksezer/consistent"
	"github.com/cespare/xxhash/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// member adapts domain.Node to consistent.Member.
type member domain.Node

func (m member) String() string {
	return string(m)
}

// hasher hashes members and keys with xxhash.
type hasher struct{}

func (hasher) Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// KeyOwnership maps cache keys to their owners: the partition owner first, then the closest members on the
// ring as backups. The table is rebuilt on every membership change and swapped under a lock, so Owners
// always reads one consistent snapshot.
type KeyOwnership struct {
	owners int
	config consistent.Config
	logger log.Logger

	mu      sync.RWMutex
	ring    *consistent.Consistent
	members int
}

// NewKeyOwnership creates an empty ownership table; Owners returns nothing until MembersChanged is called.
//
// Parameters: cfg: ownership settings (validated); logger: membership changes are logged.
//
// Returns: (*KeyOwnership, nil); (nil, error) when cfg is invalid.
//
// Called from cmd/main; the table is then passed to service.NewMemberRegistry as its MembershipListener.
func NewKeyOwnership(cfg domain.OwnershipConfig, logger log.Logger) (*KeyOwnership, error) {
	if err := domain.ValidateOwnershipConfig(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		panic("consistent.ownership.go: logger is required")
	}
	o := &KeyOwnership{
		owners: cfg.Owners,
		config: consistent.Config{
			PartitionCount:    cfg.PartitionCount,
			ReplicationFactor: cfg.VirtualNodes,
			Load:              cfg.Load,
			Hasher:            hasher{},
		},
		logger: log.With(logger, "component", "key_ownership"),
	}
	o.ring = consistent.New(nil, o.config)
	return o, nil
}

// Owners returns up to the configured number of owners of key, primary first. With fewer members than
// owners every member is returned. Returns an empty (non-nil) slice when there are no members.
func (o *KeyOwnership) Owners(key domain.CacheKey) []domain.Node {
	o.mu.RLock()
	ring, members := o.ring, o.members
	o.mu.RUnlock()

	if members == 0 {
		return []domain.Node{}
	}
	closest, err := ring.GetClosestN(key.Bytes(), min(o.owners, members))
	if err != nil {
		level.Debug(o.logger).Log("msg", "owners lookup failed", "key", key, "err", err)
		return []domain.Node{}
	}
	nodes := make([]domain.Node, 0, len(closest))
	for _, m := range closest {
		nodes = append(nodes, domain.Node(m.String()))
	}
	return nodes
}

// MembersChanged rebuilds the partition table for members. Duplicates and empty names are ignored; an empty
// member set leaves an empty table and Owners returns nothing until members come back.
func (o *KeyOwnership) MembersChanged(members []domain.Node) {
	seen := make(map[domain.Node]struct{}, len(members))
	ringMembers := make([]consistent.Member, 0, len(members))
	for _, m := range members {
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		ringMembers = append(ringMembers, member(m))
	}
	// consistent.New cannot distribute partitions over an empty non-nil member list.
	var ring *consistent.Consistent
	if len(ringMembers) == 0 {
		ring = consistent.New(nil, o.config)
	} else {
		ring = consistent.New(ringMembers, o.config)
	}

	o.mu.Lock()
	o.ring = ring
	o.members = len(ringMembers)
	o.mu.Unlock()

	level.Info(o.logger).Log("msg", "ownership table rebuilt", "members", len(ringMembers))
}
