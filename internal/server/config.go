package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds server configuration
type Config struct {
	// Network settings
	ListenAddr     string `yaml:"listen_addr"`
	MaxMessageSize int64  `yaml:"max_message_size"`

	// Scene file loaded at startup; empty starts with an empty scene.
	ScenePath string `yaml:"scene_path"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		ListenAddr:     "127.0.0.1:8080",
		MaxMessageSize: 64 * 1024,
		LogLevel:       "info",
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
