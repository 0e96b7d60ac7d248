package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-powerscale/internal/onefs"
	"github.com/giantswarm/mcp-powerscale/internal/server"
)

func clearClusterEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{server.EnvHost, server.EnvPort, server.EnvUsername, server.EnvPassword, server.EnvVerifySSL} {
		t.Setenv(key, "")
	}
}

func TestBuildServerConfigFromFlags(t *testing.T) {
	clearClusterEnv(t)

	cfg, err := buildServerConfig(ClusterConfig{
		Host:     "cluster.example.com",
		Port:     8443,
		Username: "admin",
		Password: "secret",
		Timeout:  45 * time.Second,
	}, "v1.0.0")
	require.NoError(t, err)

	assert.Equal(t, "cluster.example.com", cfg.Host)
	assert.Equal(t, 8443, cfg.Port)
	assert.Equal(t, "admin", cfg.Username)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, "v1.0.0", cfg.Version)
}

func TestBuildServerConfigDefaults(t *testing.T) {
	clearClusterEnv(t)

	cfg, err := buildServerConfig(ClusterConfig{
		Host:     "cluster.example.com",
		Username: "admin",
		Password: "secret",
	}, "dev")
	require.NoError(t, err)

	assert.Equal(t, onefs.DefaultPort, cfg.Port)
	assert.Equal(t, onefs.DefaultTimeout, cfg.Timeout)
}

func TestBuildServerConfigFromEnv(t *testing.T) {
	clearClusterEnv(t)
	t.Setenv(server.EnvHost, "env-cluster.example.com")
	t.Setenv(server.EnvUsername, "env-admin")
	t.Setenv(server.EnvPassword, "env-secret")

	cfg, err := buildServerConfig(ClusterConfig{}, "dev")
	require.NoError(t, err)

	assert.Equal(t, "env-cluster.example.com", cfg.Host)
	assert.Equal(t, "env-admin", cfg.Username)
}

func TestBuildServerConfigFromFile(t *testing.T) {
	clearClusterEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
host: file-cluster.example.com
username: file-admin
password: file-secret
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := buildServerConfig(ClusterConfig{ConfigFile: path}, "dev")
	require.NoError(t, err)

	assert.Equal(t, "file-cluster.example.com", cfg.Host)
	assert.Equal(t, "file-admin", cfg.Username)
}

func TestBuildServerConfigMissingCluster(t *testing.T) {
	clearClusterEnv(t)

	_, err := buildServerConfig(ClusterConfig{}, "dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cluster configuration")
}

func TestServeCmdUnsupportedTransport(t *testing.T) {
	clearClusterEnv(t)
	t.Setenv(server.EnvHost, "cluster.example.com")
	t.Setenv(server.EnvUsername, "admin")
	t.Setenv(server.EnvPassword, "secret")

	err := runServe(ServeConfig{Transport: "carrier-pigeon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported transport type")
}

func TestServeCmdFlags(t *testing.T) {
	cmd := newServeCmd()

	for _, flag := range []string{
		"host", "port", "username", "password", "verify-ssl", "timeout", "config",
		"transport", "http-addr", "sse-endpoint", "message-endpoint", "http-endpoint",
		"metrics", "metrics-addr", "debug",
	} {
		assert.NotNilf(t, cmd.Flags().Lookup(flag), "flag %s", flag)
	}

	assert.Equal(t, transportStdio, cmd.Flags().Lookup("transport").DefValue)
	assert.Equal(t, ":8080", cmd.Flags().Lookup("http-addr").DefValue)
}

func TestGatherCmdFlags(t *testing.T) {
	cmd := newGatherCmd()

	for _, flag := range []string{
		"host", "port", "username", "password", "verify-ssl", "timeout", "config",
		"gather-subset", "access-zone", "include-all-access-zones", "scope", "debug",
	} {
		assert.NotNilf(t, cmd.Flags().Lookup(flag), "flag %s", flag)
	}
}
