// Package config handles application configuration from environment variables
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Gemini  GeminiConfig
	Profile ProfileConfig
	Server  ServerConfig
}

// GeminiConfig holds the AI transport configuration
type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-pro"`
}

// ProfileConfig holds persistence and output locations
type ProfileConfig struct {
	Path      string `env:"PROFILE_PATH" envDefault:"athlete_profile.json"`
	OutputDir string `env:"OUTPUT_DIR" envDefault:"outputs"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port int `env:"PORT" envDefault:"8080"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// HasGemini returns true if the AI transport is configured
func (c *Config) HasGemini() bool {
	return c.Gemini.APIKey != ""
}

// Validate ensures settings needed by every mode are usable. The Gemini key
// is checked separately at plan-generation time, not here, so profile-only
// modes work without one.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1-65535, got %d", c.Server.Port)
	}
	return nil
}
