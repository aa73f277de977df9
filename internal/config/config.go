package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration, populated from the
// environment.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Auth   AuthConfig   `yaml:"auth"`
	Engine EngineConfig `yaml:"engine"`
	Log    LogConfig    `yaml:"log"`
	Seed   SeedConfig   `yaml:"seed"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port" env:"PORT" env-default:"8080"`
}

// AuthConfig holds settings for verifying bearer tokens issued by the
// external authentication service.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-default:"bidwars-dev-secret"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"bidwars"`
}

// EngineConfig holds bid acceptance engine tuning.
type EngineConfig struct {
	// CommitRetries bounds how often a submission is re-validated after a
	// version conflict before it is rejected as a conflict.
	CommitRetries int `yaml:"commit_retries" env:"ENGINE_COMMIT_RETRIES" env-default:"3"`
	// StorageRetries bounds retries of failed store commits before the
	// request fails as storage-unavailable.
	StorageRetries int `yaml:"storage_retries" env:"ENGINE_STORAGE_RETRIES" env-default:"3"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// SeedConfig controls demo seeding of users and items at startup.
type SeedConfig struct {
	Demo bool `yaml:"demo" env:"SEED_DEMO" env-default:"true"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read environment: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}
