package scenario

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const scenarioMissingSessionID = "missing_session_id"

func init() {
	Register(scenarioMissingSessionID, runMissingSessionID)
}

// runMissingSessionID expects InvalidArgument from every node for an empty id and for an id that is only a route suffix.
func runMissingSessionID(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	clients, dispose, err := createClients(cfg)
	if err != nil {
		return err
	}
	defer dispose()

	for _, c := range clients {
		for _, id := range []string{"", cfg.delimiter() + "worker"} {
			_, _, err := c.locator.Locate(ctx, id)
			if status.Code(err) != codes.InvalidArgument {
				return fmt.Errorf("locate %q on %s: got %v, want InvalidArgument", id, c.node.GRPCAddr, err)
			}
		}
	}
	return nil
}
