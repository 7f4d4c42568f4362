// Package config loads CLI configuration: defaults, then an optional
// YAML file, then environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds everything the CLI needs to run a session.
type Config struct {
	// ServiceURL is the base URL of the game service API.
	ServiceURL string `yaml:"service_url" env:"TURINGDECK_SERVICE_URL"`
	// Timeout bounds each game service request.
	Timeout time.Duration `yaml:"timeout" env:"TURINGDECK_TIMEOUT"`
	// DatabasePath is the session store file.
	DatabasePath string `yaml:"database_path" env:"TURINGDECK_DB"`
	// Difficulty and Cards are the defaults for dealing new games.
	Difficulty string `yaml:"difficulty" env:"TURINGDECK_DIFFICULTY"`
	Cards      int    `yaml:"cards" env:"TURINGDECK_CARDS"`
	// Language overrides the detected language preference.
	Language string `yaml:"language" env:"TURINGDECK_LANGUAGE"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		ServiceURL:   "https://turingmachine.info/api",
		Timeout:      10 * time.Second,
		DatabasePath: defaultDatabasePath(),
		Difficulty:   "hard",
		Cards:        6,
	}
}

// Load builds the effective configuration. path may be empty, in
// which case only defaults and the environment apply. A file named
// explicitly must exist.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// defaultDatabasePath puts the session store under the user config
// dir, falling back to the working directory.
func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "turingdeck.db"
	}
	return filepath.Join(dir, "turingdeck", "session.db")
}
