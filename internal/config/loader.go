package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/sadopc/rased/internal/i18n"
)

// Environment variables that override the file.
const (
	EnvLanguage = "RASED_LANG"
	EnvDBPath   = "RASED_DB"
	EnvLogLevel = "RASED_LOG_LEVEL"
	EnvPageSize = "RASED_PAGE_SIZE"
)

// Load reads config from path, applying defaults for missing values
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// LoadOrCreate loads config or creates default if missing
func LoadOrCreate(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		return cfg, Save(path, cfg)
	}
	return Load(path)
}

// Save writes config to path
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// ApplyEnv overrides cfg from the process environment and, for variables
// not set there, from envFile. A missing envFile is not an error.
func ApplyEnv(cfg *Config, envFile string) error {
	fileVals := map[string]string{}
	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", envFile, err)
		}
		if vals != nil {
			fileVals = vals
		}
	}

	get := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	}

	if v, ok := get(EnvLanguage); ok {
		cfg.UI.Language = v
	}
	if v, ok := get(EnvDBPath); ok {
		cfg.Storage.DBPath = v
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.Logging.Level = v
	}
	if v, ok := get(EnvPageSize); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPageSize, err)
		}
		cfg.Review.PageSize = n
	}

	cfg.normalize()
	return nil
}

// Language returns the configured UI language.
func (c *Config) Language() i18n.Lang {
	return i18n.Parse(c.UI.Language)
}

func (c *Config) normalize() {
	if c.Review.PageSize < 1 {
		c.Review.PageSize = DefaultConfig().Review.PageSize
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.UI.Language = string(i18n.Parse(c.UI.Language))
}

// DefaultPath returns ~/.config/rased/config.toml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rased", "config.toml"), nil
}
