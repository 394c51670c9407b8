package scenario

import (
	"context"
	"fmt"
	"time"
)

const scenarioEncodedRoundtrip = "encoded_roundtrip"

func init() {
	Register(scenarioEncodedRoundtrip, runEncodedRoundtrip)
}

// runEncodedRoundtrip feeds the encoded session id back and expects the suffix to be stripped and re-added unchanged.
func runEncodedRoundtrip(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	clients, dispose, err := createClients(cfg)
	if err != nil {
		return err
	}
	defer dispose()

	for _, id := range sessionIDs(cfg.Sessions) {
		route, encoded, err := locateAll(ctx, clients, id)
		if err != nil {
			return err
		}
		again, reencoded, err := locateAll(ctx, clients, encoded)
		if err != nil {
			return err
		}
		if again != route || reencoded != encoded {
			return fmt.Errorf("session %q: encoded %q located as (%q, %q), want (%q, %q)", id, encoded, again, reencoded, route, encoded)
		}
	}
	return nil
}
