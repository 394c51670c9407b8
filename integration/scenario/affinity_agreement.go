package scenario

import (
	"context"
	"fmt"
	"time"
)

const scenarioAffinityAgreement = "affinity_agreement"

func init() {
	Register(scenarioAffinityAgreement, runAffinityAgreement)
}

// runAffinityAgreement locates the same sessions on every node and expects identical answers, repeatedly.
func runAffinityAgreement(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	clients, dispose, err := createClients(cfg)
	if err != nil {
		return err
	}
	defer dispose()

	ids := sessionIDs(cfg.Sessions)
	first := make(map[string]string, len(ids))
	for round := 0; round < 3; round++ {
		for _, id := range ids {
			route, _, err := locateAll(ctx, clients, id)
			if err != nil {
				return fmt.Errorf("round %d: %w", round, err)
			}
			if prev, ok := first[id]; ok && prev != route {
				return fmt.Errorf("round %d: session %q moved from %q to %q", round, id, prev, route)
			}
			first[id] = route
		}
	}
	return nil
}
