package scenario

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"myrouting/adapters"
	"myrouting/domain"
	"myrouting/interfaces"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const sessionIDPrefix = "integration-test-session"

// nodeClient holds the clients of one node.
type nodeClient struct {
	node     Node
	locator  *adapters.LocatorClient
	registry interfaces.RegistryStore
	dispose  func()
}

// createClients connects to every node of cfg. Returns the clients and a dispose function closing them.
func createClients(cfg *Config) ([]nodeClient, func(), error) {
	if len(cfg.Nodes) == 0 {
		return nil, nil, fmt.Errorf("no nodes configured")
	}
	httpClient := &http.Client{Timeout: 5 * time.Second}
	clients := make([]nodeClient, 0, len(cfg.Nodes))
	dispose := func() {
		for _, c := range clients {
			c.dispose()
		}
	}
	for _, n := range cfg.Nodes {
		conn, err := grpc.NewClient(n.GRPCAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			dispose()
			return nil, nil, fmt.Errorf("dial %s: %w", n.GRPCAddr, err)
		}
		clients = append(clients, nodeClient{
			node:     n,
			locator:  adapters.LocatorGRPC(conn),
			registry: adapters.RegistryHTTP(n.HTTPURL, httpClient),
			dispose:  func() { _ = conn.Close() },
		})
	}
	return clients, dispose, nil
}

// sessionIDs returns n distinct session ids unique to this run.
func sessionIDs(n int) []string {
	if n <= 0 {
		n = 20
	}
	stamp := time.Now().UnixNano()
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s-%d-%d", sessionIDPrefix, stamp, i)
	}
	return out
}

// locateAll locates id on every node and fails unless all nodes agree on route and encoded id.
func locateAll(ctx context.Context, clients []nodeClient, id string) (route, encoded string, err error) {
	for i, c := range clients {
		r, e, err := c.locator.Locate(ctx, id)
		if err != nil {
			return "", "", fmt.Errorf("locate %q on %s: %w", id, c.node.GRPCAddr, err)
		}
		if i == 0 {
			route, encoded = r, e
			continue
		}
		if r != route || e != encoded {
			return "", "", fmt.Errorf("locate %q: %s answered (%q, %q), %s answered (%q, %q)",
				id, clients[0].node.GRPCAddr, route, encoded, c.node.GRPCAddr, r, e)
		}
	}
	return route, encoded, nil
}

// entryRoutes returns the set of published routes as seen by c.
func entryRoutes(ctx context.Context, c nodeClient) (map[domain.Node]domain.RegistryEntry, map[string]struct{}, error) {
	entries, err := c.registry.Entries(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("entries from %s: %w", c.node.HTTPURL, err)
	}
	routes := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		routes[string(e.Route)] = struct{}{}
	}
	return entries, routes, nil
}
