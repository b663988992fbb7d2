package config

import (
	"os"
	"testing"
	"time"
)

// TestLoadDefaults tests that default configuration values are loaded correctly.
func TestLoadDefaults(t *testing.T) {
	// Load configuration without a config file
	cfg, err := Load("nonexistent.yaml")
	if err != nil {
		t.Fatalf("Failed to load defaults: %v", err)
	}

	// Test Server defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Expected default server host '0.0.0.0', got '%s'", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default server port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("Expected default read timeout 30s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("Expected default write timeout 30s, got %v", cfg.Server.WriteTimeout)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected default shutdown timeout 10s, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Server.Debug != false {
		t.Errorf("Expected default debug false, got %v", cfg.Server.Debug)
	}

	// Test Agent defaults
	if cfg.Agent.ServerURL != "http://localhost:8080" {
		t.Errorf("Expected default agent server_url 'http://localhost:8080', got '%s'", cfg.Agent.ServerURL)
	}
	if cfg.Agent.PushInterval != 30*time.Second {
		t.Errorf("Expected default push interval 30s, got %v", cfg.Agent.PushInterval)
	}
	if cfg.Agent.RequestTimeout != 10*time.Second {
		t.Errorf("Expected default request timeout 10s, got %v", cfg.Agent.RequestTimeout)
	}
	if cfg.Agent.ProcessLimit != 0 {
		t.Errorf("Expected default process limit 0, got %d", cfg.Agent.ProcessLimit)
	}

	// Test Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default logging level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected default logging format 'text', got '%s'", cfg.Logging.Format)
	}

	// Test Security defaults
	if cfg.Security.RateLimit != 100 {
		t.Errorf("Expected default rate limit 100, got %d", cfg.Security.RateLimit)
	}
	if len(cfg.Security.AllowedOrigins) != 1 || cfg.Security.AllowedOrigins[0] != "*" {
		t.Errorf("Expected default allowed origins ['*'], got %v", cfg.Security.AllowedOrigins)
	}
}

// TestEnvironmentOverride tests that FW_ environment variables override defaults.
func TestEnvironmentOverride(t *testing.T) {
	os.Setenv("FW_SERVER_PORT", "9090")
	os.Setenv("FW_AGENT_PUSH_INTERVAL", "5s")
	defer os.Unsetenv("FW_SERVER_PORT")
	defer os.Unsetenv("FW_AGENT_PUSH_INTERVAL")

	cfg, err := Load("nonexistent.yaml")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected server port 9090 from env, got %d", cfg.Server.Port)
	}
	if cfg.Agent.PushInterval != 5*time.Second {
		t.Errorf("Expected push interval 5s from env, got %v", cfg.Agent.PushInterval)
	}
}

// TestInvalidPort tests that out-of-range ports are rejected.
func TestInvalidPort(t *testing.T) {
	os.Setenv("FW_SERVER_PORT", "70000")
	defer os.Unsetenv("FW_SERVER_PORT")

	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Expected error for invalid port, got nil")
	}
}
