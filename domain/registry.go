package domain

import "time"

// RegistryType selects where members publish their registry entries.
type RegistryType string

const (
	RegistryTypeRedis     RegistryType = "redis"
	RegistryTypeZooKeeper RegistryType = "zookeeper"
	RegistryTypeStatic    RegistryType = "static"
	// RegistryTypeHTTP publishes through the registry API of another myrouting node.
	RegistryTypeHTTP      RegistryType = "http"
)

// RegistryConfig holds the registry backend and its settings.
// Redis uses RedisAddr, Prefix and TTL; ZooKeeper uses ZooKeeperServers and ZooKeeperRoot;
// static uses Members; http uses HTTPURL, Prefix is ignored. RefreshInterval applies to every backend.
type RegistryConfig struct {
	Type             RegistryType
	RedisAddr        string
	ZooKeeperServers []string
	ZooKeeperRoot    string
	HTTPURL          string
	Prefix           string
	TTL              time.Duration
	RefreshInterval  time.Duration
	Members          map[Node]Route
}
