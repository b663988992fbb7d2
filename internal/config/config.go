// Package config provides configuration management for Fleetwatch.
//
// This package handles loading configuration from multiple sources:
//   - YAML configuration files
//   - Environment variables (with FW_ prefix)
//   - .env files
//   - Default values
//
// # Configuration Sources Priority
//
// Configuration is loaded in the following order (later sources override earlier ones):
//  1. Default values (hardcoded)
//  2. Configuration files (./config.yaml, ./configs/config.yaml, ~/.fleetwatch/config.yaml, /etc/fleetwatch/config.yaml)
//  3. .env files
//  4. Environment variables (FW_ prefix)
//
// # Usage Example
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Server: %s:%d\n", cfg.Server.Host, cfg.Server.Port)
//
// # Environment Variables
//
// Environment variables override all other configuration sources.
// Use FW_ prefix and underscores for nested keys:
//   - FW_SERVER_PORT=8080
//   - FW_AGENT_SERVER_URL=http://collector:8080
//   - FW_SECURITY_RATE_LIMIT=200
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration structure for Fleetwatch.
// It contains all configuration sections for the collector server, the
// reporting agent, logging, and security.
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `mapstructure:"server"`

	// Agent contains reporting agent configuration
	Agent AgentConfig `mapstructure:"agent"`

	// Logging contains logging settings
	Logging LoggingConfig `mapstructure:"logging"`

	// Security contains security and rate limiting settings
	Security SecurityConfig `mapstructure:"security"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Host is the server bind address (default: 0.0.0.0)
	Host string `mapstructure:"host"`

	// Port is the server listen port (default: 8080)
	Port int `mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading requests
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// WriteTimeout is the maximum duration for writing responses
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// ShutdownTimeout is the maximum duration for graceful shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// Debug enables debug logging, including accepted report payloads
	Debug bool `mapstructure:"debug"`

	// TLSEnabled enables HTTPS
	TLSEnabled bool `mapstructure:"tls_enabled"`

	// TLSCert is the path to the TLS certificate file
	TLSCert string `mapstructure:"tls_cert"`

	// TLSKey is the path to the TLS private key file
	TLSKey string `mapstructure:"tls_key"`
}

// AgentConfig contains reporting agent configuration.
type AgentConfig struct {
	// ServerURL is the base URL of the collector server
	ServerURL string `mapstructure:"server_url"`

	// PushInterval is the duration between report pushes
	PushInterval time.Duration `mapstructure:"push_interval"`

	// RequestTimeout bounds a single report push
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// ProcessLimit caps the number of process names per report (0 = unlimited)
	ProcessLimit int `mapstructure:"process_limit"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is the log format (json, text)
	Format string `mapstructure:"format"`
}

// SecurityConfig contains security and rate limiting settings.
type SecurityConfig struct {
	// RateLimit is the maximum requests per second per client
	RateLimit int `mapstructure:"rate_limit"`

	// AllowedOrigins are the CORS allowed origins
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from a file and environment variables.
// If cfgFile is empty, it searches for config.yaml in standard locations.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (FW_ prefix)
//  2. .env file
//  3. Configuration file
//  4. Default values
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.fleetwatch")
		v.AddConfigPath("/etc/fleetwatch")
	}

	if err := v.ReadInConfig(); err != nil {
		// An explicitly named file that is missing still loads defaults;
		// any other read error is fatal.
		if cfgFile != "" {
			if !isFileNotFoundError(err) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.MergeInConfig() // Ignore error if .env file doesn't exist

	v.SetEnvPrefix("FW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.debug", false)
	v.SetDefault("server.tls_enabled", false)

	v.SetDefault("agent.server_url", "http://localhost:8080")
	v.SetDefault("agent.push_interval", "30s")
	v.SetDefault("agent.request_timeout", "10s")
	v.SetDefault("agent.process_limit", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("security.rate_limit", 100)
	v.SetDefault("security.allowed_origins", []string{"*"})
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	if cfg.Agent.ServerURL == "" {
		return fmt.Errorf("agent server_url is required")
	}

	if cfg.Agent.PushInterval <= 0 {
		return fmt.Errorf("agent push_interval must be positive")
	}

	return nil
}

// isFileNotFoundError checks if an error is a file not found error.
func isFileNotFoundError(err error) bool {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return errors.Is(pathErr, os.ErrNotExist)
	}
	return false
}
