package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"myrouting/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T, yamlContent string) {
	t.Helper()
	t.Setenv(envHTTPPort, "8080")
	t.Setenv(envGRPCPort, "50051")
	t.Setenv(envNodeName, "node-a")
	t.Setenv(envNodeRoute, "")
	cfgPath := filepath.Join(t.TempDir(), "myrouting.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(yamlContent), 0o644))
	t.Setenv(envConfigPath, cfgPath)
}

func TestLoadConfig_YAML(t *testing.T) {
	setBaseEnv(t, `
locator:
  type: ranked
  delimiter: ","
  max_routes: 2
ownership:
  owners: 3
  partition_count: 71
  virtual_nodes: 10
  load: 1.5
registry:
  type: redis
  redis_addr: redis://redis:6379
  prefix: routes
  ttl_ms: 3000
  refresh_interval_ms: 1000
`)
	t.Setenv(envNodeRoute, "worker-a")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, domain.Node("node-a"), cfg.NodeName)
	assert.Equal(t, domain.Route("worker-a"), cfg.NodeRoute)
	assert.Equal(t, domain.LocatorConfig{Type: domain.LocatorRanked, Delimiter: ",", MaxRoutes: 2}, cfg.Locator)
	assert.Equal(t, domain.OwnershipConfig{Owners: 3, PartitionCount: 71, VirtualNodes: 10, Load: 1.5}, cfg.Ownership)
	assert.Equal(t, domain.RegistryTypeRedis, cfg.Registry.Type)
	assert.Equal(t, "redis://redis:6379", cfg.Registry.RedisAddr)
	assert.Equal(t, "routes", cfg.Registry.Prefix)
	assert.Equal(t, 3*time.Second, cfg.Registry.TTL)
	assert.Equal(t, time.Second, cfg.Registry.RefreshInterval)
}

func TestLoadConfig_Defaults(t *testing.T) {
	setBaseEnv(t, "{}\n")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, domain.Route("node-a"), cfg.NodeRoute, "NODE_ROUTE defaults to NODE_NAME")
	assert.Equal(t, domain.DefaultLocatorConfig(), cfg.Locator)
	assert.Equal(t, domain.DefaultOwnershipConfig(), cfg.Ownership)
	assert.Equal(t, domain.RegistryTypeStatic, cfg.Registry.Type)
	assert.Equal(t, defaultRegistryPrefix, cfg.Registry.Prefix)
	assert.Equal(t, defaultZooKeeperRoot, cfg.Registry.ZooKeeperRoot)
	assert.Equal(t, defaultRegistryTTL, cfg.Registry.TTL)
	assert.Equal(t, defaultRefreshInterval, cfg.Registry.RefreshInterval)
	assert.Equal(t, defaultZooKeeperTimeout, cfg.ZooKeeperSessionTimeout)
	assert.Nil(t, cfg.Registry.Members)
}

func TestLoadConfig_LegacyPreset(t *testing.T) {
	setBaseEnv(t, `
locator:
  preset: legacy
`)
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, domain.LegacyLocatorConfig(), cfg.Locator)
}

func TestLoadConfig_StaticMembers(t *testing.T) {
	setBaseEnv(t, `
registry:
  type: static
  ttl_ms: -1
  members:
    node-b: worker-b
    " node-c ": " worker-c "
`)
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Registry.TTL)
	assert.Equal(t, map[domain.Node]domain.Route{"node-b": "worker-b", "node-c": "worker-c"}, cfg.Registry.Members)
}

func TestLoadConfig_ZooKeeperAndHTTP(t *testing.T) {
	t.Run("zookeeper", func(t *testing.T) {
		setBaseEnv(t, `
registry:
  type: zookeeper
  zookeeper_servers: ["zk1:2181", " ", "zk2:2181"]
  zookeeper_root: /routes
  zookeeper_session_timeout_ms: 4000
`)
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, []string{"zk1:2181", "zk2:2181"}, cfg.Registry.ZooKeeperServers)
		assert.Equal(t, "/routes", cfg.Registry.ZooKeeperRoot)
		assert.Equal(t, 4*time.Second, cfg.ZooKeeperSessionTimeout)
	})
	t.Run("http", func(t *testing.T) {
		setBaseEnv(t, `
registry:
  type: http
  http_url: "http://registry:8080/"
`)
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, domain.RegistryTypeHTTP, cfg.Registry.Type)
		assert.Equal(t, "http://registry:8080", cfg.Registry.HTTPURL)
	})
}

func TestLoadConfig_RelativePath(t *testing.T) {
	setBaseEnv(t, "{}\n")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rel.yaml"), []byte("{}\n"), 0o644))
	t.Chdir(dir)
	t.Setenv(envConfigPath, "rel.yaml")

	_, err := LoadConfig()
	require.NoError(t, err)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		yaml        string
		wantContain string
	}{
		{name: "http_port_missing", env: map[string]string{envHTTPPort: ""}, yaml: "{}", wantContain: envHTTPPort},
		{name: "grpc_port_invalid", env: map[string]string{envGRPCPort: "abc"}, yaml: "{}", wantContain: envGRPCPort},
		{name: "grpc_port_out_of_range", env: map[string]string{envGRPCPort: "70000"}, yaml: "{}", wantContain: "1-65535"},
		{name: "node_name_missing", env: map[string]string{envNodeName: " "}, yaml: "{}", wantContain: envNodeName},
		{name: "config_path_missing", env: map[string]string{envConfigPath: ""}, yaml: "{}", wantContain: envConfigPath},
		{name: "config_file_missing", env: map[string]string{envConfigPath: "/nonexistent/myrouting.yaml"}, yaml: "{}", wantContain: "load config"},
		{name: "invalid_yaml", yaml: "locator: [", wantContain: "load config"},
		{name: "unknown_preset", yaml: "locator:\n  preset: fancy\n", wantContain: "locator.preset"},
		{name: "unknown_locator_type", yaml: "locator:\n  type: random\n", wantContain: "locator.type"},
		{name: "ranked_negative_max_routes", yaml: "locator:\n  type: ranked\n  max_routes: -1\n", wantContain: "locator.max_routes"},
		{name: "ranked_whitespace_delimiter", yaml: "locator:\n  type: ranked\n  delimiter: \" \"\n", wantContain: "locator.delimiter"},
		{name: "ownership_load", yaml: "ownership:\n  load: 0.5\n", wantContain: "ownership.load"},
		{name: "unknown_registry", yaml: "registry:\n  type: etcd\n", wantContain: "registry.type"},
		{name: "redis_addr_missing", yaml: "registry:\n  type: redis\n", wantContain: "registry.redis_addr"},
		{name: "zookeeper_servers_missing", yaml: "registry:\n  type: zookeeper\n", wantContain: "registry.zookeeper_servers"},
		{name: "zookeeper_root_relative", yaml: "registry:\n  type: zookeeper\n  zookeeper_servers: [zk:2181]\n  zookeeper_root: routes\n", wantContain: "registry.zookeeper_root"},
		{name: "http_url_missing", yaml: "registry:\n  type: http\n", wantContain: "registry.http_url"},
		{name: "refresh_negative", yaml: "registry:\n  refresh_interval_ms: -5\n", wantContain: "registry.refresh_interval_ms"},
		{name: "static_member_empty_route", yaml: "registry:\n  members:\n    node-b: \"\"\n", wantContain: "registry.members"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t, tt.yaml)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantContain)
		})
	}
}
