package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"myrouting/domain"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envHTTPPort   = "SERVICE_PORT_HTTP"
	envGRPCPort   = "SERVICE_PORT_GRPC"
	envConfigPath = "CONFIG_PATH"
	envNodeName   = "NODE_NAME"
	envNodeRoute  = "NODE_ROUTE"
)

// Registry defaults applied when the YAML leaves a field out.
const (
	defaultRegistryPrefix   = "myrouting:routes"
	defaultZooKeeperRoot    = "/myrouting/routes"
	defaultRegistryTTL      = 15 * time.Second
	defaultRefreshInterval  = 5 * time.Second
	defaultZooKeeperTimeout = 10 * time.Second
)

// Config holds the node configuration loaded by LoadConfig from environment variables and the YAML file.
type Config struct {
	HTTPPort  int
	GRPCPort  int
	NodeName  domain.Node
	NodeRoute domain.Route
	Locator   domain.LocatorConfig
	Ownership domain.OwnershipConfig
	Registry  domain.RegistryConfig
	// ZooKeeperSessionTimeout bounds how long ephemeral entries outlive a dead member.
	ZooKeeperSessionTimeout time.Duration
}

type yamlConfig struct {
	Locator   yamlLocator   `yaml:"locator"`
	Ownership yamlOwnership `yaml:"ownership"`
	Registry  yamlRegistry  `yaml:"registry"`
}

// yamlLocator: preset (default|legacy) is applied first, then the explicit fields override it.
type yamlLocator struct {
	Preset    string `yaml:"preset"`
	Type      string `yaml:"type"`
	Delimiter string `yaml:"delimiter"`
	MaxRoutes int    `yaml:"max_routes"`
}

type yamlOwnership struct {
	Owners         int     `yaml:"owners"`
	PartitionCount int     `yaml:"partition_count"`
	VirtualNodes   int     `yaml:"virtual_nodes"`
	Load           float64 `yaml:"load"`
}

// yamlRegistry: type is redis|zookeeper|static|http. ttl_ms -1 disables expiry.
type yamlRegistry struct {
	Type                      string            `yaml:"type"`
	RedisAddr                 string            `yaml:"redis_addr"`
	ZooKeeperServers          []string          `yaml:"zookeeper_servers"`
	ZooKeeperRoot             string            `yaml:"zookeeper_root"`
	ZooKeeperSessionTimeoutMs int               `yaml:"zookeeper_session_timeout_ms"`
	HTTPURL                   string            `yaml:"http_url"`
	Prefix                    string            `yaml:"prefix"`
	TTLMs                     int               `yaml:"ttl_ms"`
	RefreshIntervalMs         int               `yaml:"refresh_interval_ms"`
	Members                   map[string]string `yaml:"members"`
}

func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the node config from environment variables and the YAML file at CONFIG_PATH.
// SERVICE_PORT_HTTP and SERVICE_PORT_GRPC (1-65535), CONFIG_PATH and NODE_NAME are required;
// NODE_ROUTE defaults to NODE_NAME. CONFIG_PATH is made absolute before reading.
//
// Returns: (*Config, nil) on success; (nil, error) on a bad env value, YAML load/parse error or invalid section.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	httpPort, err := portFromEnv(envHTTPPort)
	if err != nil {
		return nil, err
	}
	grpcPort, err := portFromEnv(envGRPCPort)
	if err != nil {
		return nil, err
	}
	nodeName := strings.TrimSpace(os.Getenv(envNodeName))
	if nodeName == "" {
		return nil, fmt.Errorf("%s is required", envNodeName)
	}
	nodeRoute := strings.TrimSpace(os.Getenv(envNodeRoute))
	if nodeRoute == "" {
		nodeRoute = nodeName
	}
	configPath := strings.TrimSpace(os.Getenv(envConfigPath))
	if configPath == "" {
		return nil, fmt.Errorf("%s is required", envConfigPath)
	}
	if !filepath.IsAbs(configPath) {
		abs, absErr := filepath.Abs(configPath)
		if absErr != nil {
			return nil, absErr
		}
		configPath = abs
	}
	raw, err := loadYAMLConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}

	locator, err := locatorConfig(raw.Locator)
	if err != nil {
		return nil, err
	}
	ownership := ownershipConfig(raw.Ownership)
	if err := domain.ValidateOwnershipConfig(ownership); err != nil {
		return nil, err
	}
	registry, err := registryConfig(raw.Registry)
	if err != nil {
		return nil, err
	}
	zkTimeout := defaultZooKeeperTimeout
	if raw.Registry.ZooKeeperSessionTimeoutMs > 0 {
		zkTimeout = time.Duration(raw.Registry.ZooKeeperSessionTimeoutMs) * time.Millisecond
	}

	return &Config{
		HTTPPort:                httpPort,
		GRPCPort:                grpcPort,
		NodeName:                domain.Node(nodeName),
		NodeRoute:               domain.Route(nodeRoute),
		Locator:                 locator,
		Ownership:               ownership,
		Registry:                registry,
		ZooKeeperSessionTimeout: zkTimeout,
	}, nil
}

func portFromEnv(name string) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	port, err := strconv.Atoi(raw)
	if err != nil || raw == "" {
		return 0, fmt.Errorf("%s must be a valid port (1-65535)", name)
	}
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("%s must be 1-65535, got %d", name, port)
	}
	return port, nil
}

func locatorConfig(raw yamlLocator) (domain.LocatorConfig, error) {
	var cfg domain.LocatorConfig
	switch strings.TrimSpace(raw.Preset) {
	case "", "default":
		cfg = domain.DefaultLocatorConfig()
	case "legacy":
		cfg = domain.LegacyLocatorConfig()
	default:
		return domain.LocatorConfig{}, fmt.Errorf("locator.preset must be default|legacy")
	}
	if t := strings.TrimSpace(raw.Type); t != "" {
		cfg.Type = domain.LocatorType(t)
	}
	if raw.Delimiter != "" {
		cfg.Delimiter = raw.Delimiter
	}
	if raw.MaxRoutes != 0 {
		cfg.MaxRoutes = raw.MaxRoutes
	}
	if err := domain.ValidateLocatorConfig(cfg); err != nil {
		return domain.LocatorConfig{}, err
	}
	return cfg, nil
}

func ownershipConfig(raw yamlOwnership) domain.OwnershipConfig {
	cfg := domain.DefaultOwnershipConfig()
	if raw.Owners != 0 {
		cfg.Owners = raw.Owners
	}
	if raw.PartitionCount != 0 {
		cfg.PartitionCount = raw.PartitionCount
	}
	if raw.VirtualNodes != 0 {
		cfg.VirtualNodes = raw.VirtualNodes
	}
	if raw.Load != 0 {
		cfg.Load = raw.Load
	}
	return cfg
}

func registryConfig(raw yamlRegistry) (domain.RegistryConfig, error) {
	cfg := domain.RegistryConfig{
		Type:            domain.RegistryType(strings.TrimSpace(raw.Type)),
		RedisAddr:       strings.TrimSpace(raw.RedisAddr),
		ZooKeeperRoot:   strings.TrimSpace(raw.ZooKeeperRoot),
		HTTPURL:         strings.TrimRight(strings.TrimSpace(raw.HTTPURL), "/"),
		Prefix:          strings.TrimSpace(raw.Prefix),
		TTL:             defaultRegistryTTL,
		RefreshInterval: defaultRefreshInterval,
	}
	if cfg.Type == "" {
		cfg.Type = domain.RegistryTypeStatic
	}
	if cfg.Prefix == "" {
		cfg.Prefix = defaultRegistryPrefix
	}
	if cfg.ZooKeeperRoot == "" {
		cfg.ZooKeeperRoot = defaultZooKeeperRoot
	}
	switch {
	case raw.TTLMs < 0:
		cfg.TTL = 0
	case raw.TTLMs > 0:
		cfg.TTL = time.Duration(raw.TTLMs) * time.Millisecond
	}
	if raw.RefreshIntervalMs < 0 {
		return domain.RegistryConfig{}, fmt.Errorf("registry.refresh_interval_ms must be positive")
	}
	if raw.RefreshIntervalMs > 0 {
		cfg.RefreshInterval = time.Duration(raw.RefreshIntervalMs) * time.Millisecond
	}
	for _, s := range raw.ZooKeeperServers {
		if s = strings.TrimSpace(s); s != "" {
			cfg.ZooKeeperServers = append(cfg.ZooKeeperServers, s)
		}
	}
	if len(raw.Members) > 0 {
		cfg.Members = make(map[domain.Node]domain.Route, len(raw.Members))
		for member, route := range raw.Members {
			member, route = strings.TrimSpace(member), strings.TrimSpace(route)
			if member == "" || route == "" {
				return domain.RegistryConfig{}, fmt.Errorf("registry.members: member and route must be non-empty")
			}
			cfg.Members[domain.Node(member)] = domain.Route(route)
		}
	}

	switch cfg.Type {
	case domain.RegistryTypeRedis:
		if cfg.RedisAddr == "" {
			return domain.RegistryConfig{}, fmt.Errorf("registry.redis_addr is required for redis registry")
		}
	case domain.RegistryTypeZooKeeper:
		if len(cfg.ZooKeeperServers) == 0 {
			return domain.RegistryConfig{}, fmt.Errorf("registry.zookeeper_servers is required for zookeeper registry")
		}
		if !strings.HasPrefix(cfg.ZooKeeperRoot, "/") {
			return domain.RegistryConfig{}, fmt.Errorf("registry.zookeeper_root must start with /")
		}
	case domain.RegistryTypeHTTP:
		if cfg.HTTPURL == "" {
			return domain.RegistryConfig{}, fmt.Errorf("registry.http_url is required for http registry")
		}
	case domain.RegistryTypeStatic:
	default:
		return domain.RegistryConfig{}, fmt.Errorf("registry.type must be redis|zookeeper|static|http")
	}
	return cfg, nil
}
