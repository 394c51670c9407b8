package scenario

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"
)

const scenarioRegistryEntries = "registry_entries"

func init() {
	Register(scenarioRegistryEntries, runRegistryEntries)
}

// runRegistryEntries expects every node to list the same entries and every located route to be a published one.
func runRegistryEntries(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	clients, dispose, err := createClients(cfg)
	if err != nil {
		return err
	}
	defer dispose()

	entries, routes, err := entryRoutes(ctx, clients[0])
	if err != nil {
		return err
	}
	if len(entries) < len(clients) {
		return fmt.Errorf("%d entries published, want at least one per node (%d)", len(entries), len(clients))
	}
	for _, c := range clients[1:] {
		other, _, err := entryRoutes(ctx, c)
		if err != nil {
			return err
		}
		if !reflect.DeepEqual(entries, other) {
			return fmt.Errorf("entries differ: %s has %v, %s has %v", clients[0].node.HTTPURL, entries, c.node.HTTPURL, other)
		}
	}

	for _, id := range sessionIDs(cfg.Sessions) {
		route, _, err := locateAll(ctx, clients, id)
		if err != nil {
			return err
		}
		if route == "" {
			continue
		}
		for _, r := range strings.Split(route, cfg.delimiter()) {
			if _, ok := routes[r]; !ok {
				return fmt.Errorf("session %q located to %q, which no member publishes", id, r)
			}
		}
	}
	return nil
}
