package server

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/giantswarm/mcp-powerscale/internal/onefs"
)

// Environment variable names for cluster connection settings. Flags take
// precedence over the environment, the environment over the config file.
const (
	EnvHost      = "ONEFS_HOST"
	EnvPort      = "ONEFS_PORT"
	EnvUsername  = "ONEFS_USERNAME"
	EnvPassword  = "ONEFS_PASSWORD" //nolint:gosec // env var name, not a credential
	EnvVerifySSL = "ONEFS_VERIFY_SSL"
)

// Config holds the server configuration.
type Config struct {
	// ServerName identifies the MCP server to clients.
	ServerName string `yaml:"serverName"`

	// Version is the build version injected by the CLI.
	Version string `yaml:"-"`

	// Cluster connection settings.
	Host      string        `yaml:"host"`
	Port      int           `yaml:"port"`
	Username  string        `yaml:"username"`
	Password  string        `yaml:"password"`
	VerifySSL bool          `yaml:"verifySSL"`
	Timeout   time.Duration `yaml:"timeout"`
}

// NewDefaultConfig returns a Config with defaults applied.
func NewDefaultConfig() *Config {
	return &Config{
		ServerName: "mcp-powerscale",
		Version:    "dev",
		Port:       onefs.DefaultPort,
		Timeout:    onefs.DefaultTimeout,
	}
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ApplyEnv overlays connection settings from the environment onto any field
// the caller has not set explicitly.
func (c *Config) ApplyEnv() {
	if c.Host == "" {
		c.Host = os.Getenv(EnvHost)
	}
	if c.Username == "" {
		c.Username = os.Getenv(EnvUsername)
	}
	if c.Password == "" {
		c.Password = os.Getenv(EnvPassword)
	}
	if c.Port == 0 || c.Port == onefs.DefaultPort {
		if port, err := strconv.Atoi(os.Getenv(EnvPort)); err == nil && port > 0 {
			c.Port = port
		}
	}
	if value := os.Getenv(EnvVerifySSL); value != "" {
		if verify, err := strconv.ParseBool(value); err == nil {
			c.VerifySSL = verify
		}
	}
}

// LoadConfigFile reads a YAML config file and fills any connection field the
// flags and environment left empty.
func (c *Config) LoadConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if c.Host == "" {
		c.Host = fileConfig.Host
	}
	if c.Username == "" {
		c.Username = fileConfig.Username
	}
	if c.Password == "" {
		c.Password = fileConfig.Password
	}
	if fileConfig.Port != 0 && c.Port == onefs.DefaultPort {
		c.Port = fileConfig.Port
	}
	if fileConfig.VerifySSL {
		c.VerifySSL = true
	}
	if fileConfig.Timeout != 0 && c.Timeout == onefs.DefaultTimeout {
		c.Timeout = fileConfig.Timeout
	}
	return nil
}

// ClientConfig derives the OneFS client configuration.
func (c *Config) ClientConfig() *onefs.ClientConfig {
	return &onefs.ClientConfig{
		Host:      c.Host,
		Port:      c.Port,
		Username:  c.Username,
		Password:  c.Password,
		VerifySSL: c.VerifySSL,
		Timeout:   c.Timeout,
	}
}

// Validate checks that the configuration can reach a cluster.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("cluster host is required (flag, %s or config file)", EnvHost)
	}
	if c.Username == "" || c.Password == "" {
		return fmt.Errorf("cluster credentials are required (flags, %s/%s or config file)",
			EnvUsername, EnvPassword)
	}
	return nil
}
