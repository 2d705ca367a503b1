// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package webserver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults give a plaintext listener on localhost:8000.
const (
	DefaultHost = "localhost"
	DefaultPort = 8000
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config holds the webserver configuration.
//
// It can be loaded from a JSON or YAML file specified either explicitly or
// via the AGENT_CONFIG_FILE environment variable, with defaults applied for
// any missing values. Supported file extensions: .json, .yaml, .yml.
// TLS paths are read once at startup; there is no hot reload.
type Config struct {
	// Server: listener address and HTTP timeouts
	Server struct {
		// Host: interface to bind, defaults to "localhost"
		Host string `json:"host" yaml:"host"`
		// Port: TCP port to bind, defaults to 8000; 0 selects an ephemeral port
		Port int `json:"port" yaml:"port"`
		// ReadTimeout: per-request read timeout in seconds
		ReadTimeout int `json:"readTimeoutSeconds" yaml:"readTimeoutSeconds"`
		// WriteTimeout: per-request write timeout in seconds
		WriteTimeout int `json:"writeTimeoutSeconds" yaml:"writeTimeoutSeconds"`
		// IdleTimeout: keep-alive idle timeout in seconds
		IdleTimeout int `json:"idleTimeoutSeconds" yaml:"idleTimeoutSeconds"`
		// ShutdownTimeout: graceful drain budget in seconds
		ShutdownTimeout int `json:"shutdownTimeoutSeconds" yaml:"shutdownTimeoutSeconds"`
	} `json:"server" yaml:"server"`

	// TLS: optional certificate/key pair enabling HTTPS
	TLS struct {
		// CertFile: path to the PEM-encoded certificate
		CertFile string `json:"certFile" yaml:"certFile"`
		// KeyFile: path to the PEM-encoded private key
		KeyFile string `json:"keyFile" yaml:"keyFile"`
	} `json:"tls" yaml:"tls"`
}

// detectConfigFormat determines the configuration file format based on the
// file extension, matching case-insensitively for cross-platform use.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// LoadConfig loads webserver configuration from a JSON or YAML file or
// applies defaults.
//
// Configuration priority:
//  1. Default values are set
//  2. AGENT_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if a path was resolved)
//
// Command-line flags are applied by the caller on top of the returned value,
// so flags always win over the file. A parse or read failure is a startup
// error: the caller must terminate before binding any socket.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set defaults
	config.Server.Host = DefaultHost
	config.Server.Port = DefaultPort
	config.Server.ReadTimeout = 30
	config.Server.WriteTimeout = 60
	config.Server.IdleTimeout = 120
	config.Server.ShutdownTimeout = 10

	// Check environment variable for config file path if not provided
	if configPath == "" {
		configPath = os.Getenv("AGENT_CONFIG_FILE")
	}

	// Try to load from file if path is provided
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Detect format and unmarshal accordingly
		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		// Validate and restore defaults for invalid values
		if config.Server.Host == "" {
			config.Server.Host = DefaultHost
		}
		if config.Server.Port < 0 {
			config.Server.Port = DefaultPort
		}
		if config.Server.ReadTimeout <= 0 {
			config.Server.ReadTimeout = 30
		}
		if config.Server.WriteTimeout <= 0 {
			config.Server.WriteTimeout = 60
		}
		if config.Server.IdleTimeout <= 0 {
			config.Server.IdleTimeout = 120
		}
		if config.Server.ShutdownTimeout <= 0 {
			config.Server.ShutdownTimeout = 10
		}
	}

	return config, nil
}
