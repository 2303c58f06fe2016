// Package config loads the serve-mode configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Server holds all configuration for `lattice serve`.
type Server struct {
	// Network
	Listen string `yaml:"listen"`

	// Game data
	GamedataURL string `yaml:"gamedata_url"`

	// Planner
	TrackCount int `yaml:"track_count"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Published-scenario store. Empty address means in-memory.
	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig holds Redis connection parameters for the scenario store.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	// ScenarioTTLSeconds expires published scenarios; zero keeps them forever.
	ScenarioTTLSeconds int `yaml:"scenario_ttl_seconds"`
}

// Default returns a Server config with sensible defaults.
func Default() Server {
	return Server{
		Listen:      ":8080",
		GamedataURL: "http://localhost:8080/gamedata.json",
		TrackCount:  4,
		LogLevel:    "info",
	}
}

// Load reads a yaml config file, layered over the defaults. A missing path
// returns the defaults unchanged.
func Load(path string) (Server, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
