// Package config loads kidarcade settings from the environment, an
// optional .env file and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Score backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	DBPath       string `yaml:"db-path" env:"KIDARCADE_DB"`
	ScoreBackend string `yaml:"score-backend" env:"KIDARCADE_SCORES" env-default:"sqlite"`
	RedisAddr    string `yaml:"redis-addr" env:"KIDARCADE_REDIS_ADDR" env-default:"localhost:6379"`
	RaceSeconds  int    `yaml:"race-seconds" env:"KIDARCADE_RACE_SECONDS" env-default:"30"`
	Seed         uint64 `yaml:"seed" env:"KIDARCADE_SEED" env-default:"0"`
	HTTPAddr     string `yaml:"http-addr" env:"KIDARCADE_HTTP_ADDR" env-default:":8080"`
	Log          Log    `yaml:"log"`
}

type Log struct {
	Level   string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	File    string `yaml:"file" env:"LOG_FILE"`
	Console bool   `yaml:"console" env:"LOG_CONSOLE" env-default:"false"`
}

// Load reads configuration. A .env file in the working directory is
// applied first when present; path, when non-empty, names a YAML file
// whose values environment variables may override.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values cleanenv cannot.
func (c *Config) Validate() error {
	switch c.ScoreBackend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown score backend %q (want sqlite, redis or memory)", c.ScoreBackend)
	}
	if c.RaceSeconds <= 0 {
		return fmt.Errorf("race seconds must be positive, got %d", c.RaceSeconds)
	}
	return nil
}

// LogPath returns the log file path, defaulting to
// $XDG_STATE_HOME/kidarcade/kidarcade.log.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "kidarcade", "kidarcade.log"), nil
}

// Help describes the environment variables Config reads.
func Help() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}
