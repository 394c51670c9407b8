package scenario

// Node is one myrouting node under test: its gRPC locate address and its HTTP API base URL.
type Node struct {
	GRPCAddr string
	HTTPURL  string
}

// Config holds the nodes of the cluster under test. All nodes must share one registry.
type Config struct {
	Nodes []Node
	// Sessions is the number of session ids each scenario locates.
	Sessions int
	// Delimiter is the locator delimiter of the cluster; "." when empty.
	Delimiter string
}

func (c *Config) delimiter() string {
	if c.Delimiter == "" {
		return "."
	}
	return c.Delimiter
}
