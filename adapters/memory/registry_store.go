// Package memory holds a process-local interfaces.RegistryStore for static membership and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"myrouting/domain"
	"myrouting/helpers"
)

type record struct {
	entry   domain.RegistryEntry
	expires time.Time
}

// RegistryStore keeps entries in a map. Entries published with a TTL are hidden once expired and dropped on the next write.
type RegistryStore struct {
	now func() time.Time

	mu      sync.RWMutex
	records map[domain.Node]record
}

// NewRegistryStore creates a store seeded with members (static YAML membership); seeds never expire.
// Panics on nil now.
func NewRegistryStore(members map[domain.Node]domain.Route, now func() time.Time) *RegistryStore {
	s := &RegistryStore{
		now:     helpers.NilPanic(now, "memory.registry_store.go: now is required"),
		records: make(map[domain.Node]record, len(members)),
	}
	for member, route := range members {
		s.records[member] = record{entry: domain.NewRegistryEntry(route)}
	}
	return s
}

func (s *RegistryStore) Publish(_ context.Context, member domain.Node, entry domain.RegistryEntry, ttl time.Duration) error {
	now := s.now()
	rec := record{entry: entry}
	if ttl > 0 {
		rec.expires = now.Add(ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for m, r := range s.records {
		if r.expired(now) {
			delete(s.records, m)
		}
	}
	s.records[member] = rec
	return nil
}

func (s *RegistryStore) Remove(_ context.Context, member domain.Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, member)
	return nil
}

func (s *RegistryStore) Entries(_ context.Context) (map[domain.Node]domain.RegistryEntry, error) {
	now := s.now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make(map[domain.Node]domain.RegistryEntry, len(s.records))
	for member, r := range s.records {
		if !r.expired(now) {
			entries[member] = r.entry
		}
	}
	return entries, nil
}

func (r record) expired(now time.Time) bool {
	return !r.expires.IsZero() && !now.Before(r.expires)
}
