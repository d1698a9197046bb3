package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load reads configuration from CONFIG_PATH (or ./config.yaml when it
// exists), then ENV, then env-default tags. A CONFIG_PATH pointing at a
// missing file is an error.
func Load() (*Config, error) {
	path, ok := os.LookupEnv("CONFIG_PATH")
	if !ok || path == "" {
		return LoadFrom(defaultPath, false)
	}
	return LoadFrom(path, true)
}

// LoadFrom loads configuration from path. When required is false a missing
// file falls back to ENV and defaults.
func LoadFrom(path string, required bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case required || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
