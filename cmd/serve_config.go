package cmd

import (
	"fmt"
	"time"

	"github.com/giantswarm/mcp-powerscale/internal/server"
)

// ServeConfig holds all configuration for the serve command.
type ServeConfig struct {
	// Transport settings
	Transport string
	HTTPAddr  string

	// Endpoint paths
	SSEEndpoint     string
	MessageEndpoint string
	HTTPEndpoint    string

	// Cluster connection settings
	Cluster ClusterConfig

	// Debug enables debug logging
	Debug bool

	// Metrics server configuration
	Metrics MetricsServeConfig
}

// ClusterConfig holds the PowerScale cluster connection settings taken from
// flags. Empty fields fall back to the environment and the config file.
type ClusterConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	VerifySSL  bool
	Timeout    time.Duration
	ConfigFile string
}

// MetricsServeConfig holds the dedicated metrics server configuration.
type MetricsServeConfig struct {
	// Enabled starts the metrics server alongside HTTP transports
	Enabled bool

	// Addr is the metrics server listen address
	Addr string
}

// buildServerConfig layers the cluster connection settings in precedence
// order: flags, then environment, then config file.
func buildServerConfig(cluster ClusterConfig, version string) (*server.Config, error) {
	cfg := server.NewDefaultConfig()
	cfg.Version = version
	cfg.Host = cluster.Host
	cfg.Username = cluster.Username
	cfg.Password = cluster.Password
	cfg.VerifySSL = cluster.VerifySSL
	if cluster.Port != 0 {
		cfg.Port = cluster.Port
	}
	if cluster.Timeout != 0 {
		cfg.Timeout = cluster.Timeout
	}

	cfg.ApplyEnv()

	if cluster.ConfigFile != "" {
		if err := cfg.LoadConfigFile(cluster.ConfigFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cluster configuration: %w", err)
	}
	return cfg, nil
}
