package scenario

import (
	"context"
	"fmt"
	"time"

	"myrouting/domain"
)

const scenarioRegisterUnregister = "register_unregister"

func init() {
	Register(scenarioRegisterUnregister, runRegisterUnregister)
}

// runRegisterUnregister registers a temporary member through the first node and expects every node to see it
// come and go.
func runRegisterUnregister(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	clients, dispose, err := createClients(cfg)
	if err != nil {
		return err
	}
	defer dispose()

	member := domain.Node(fmt.Sprintf("integration-test-member-%d", time.Now().UnixNano()))
	route := domain.Route("integration-test-route")
	if err := clients[0].registry.Publish(ctx, member, domain.NewRegistryEntry(route), 30*time.Second); err != nil {
		return fmt.Errorf("register %s: %w", member, err)
	}
	for _, c := range clients {
		entries, err := c.registry.Entries(ctx)
		if err != nil {
			return fmt.Errorf("entries from %s: %w", c.node.HTTPURL, err)
		}
		if entries[member].Route != route {
			return fmt.Errorf("%s: entry of %s is %q, want %q", c.node.HTTPURL, member, entries[member].Route, route)
		}
	}

	if err := clients[0].registry.Remove(ctx, member); err != nil {
		return fmt.Errorf("unregister %s: %w", member, err)
	}
	for _, c := range clients {
		entries, err := c.registry.Entries(ctx)
		if err != nil {
			return fmt.Errorf("entries from %s: %w", c.node.HTTPURL, err)
		}
		if _, ok := entries[member]; ok {
			return fmt.Errorf("%s still lists %s after unregister", c.node.HTTPURL, member)
		}
	}
	return nil
}
