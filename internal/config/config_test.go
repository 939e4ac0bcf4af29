package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sadopc/rased/internal/i18n"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, configPath, `
[ui]
language = "ar-SA"

[review]
page_size = 10

[contractor]
seed = 42

[storage]
db_path = "/tmp/rased-test.db"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.UI.Language != "ar" {
		t.Errorf("expected language 'ar', got '%s'", cfg.UI.Language)
	}
	if cfg.Language() != i18n.AR {
		t.Errorf("expected Language() ar, got %s", cfg.Language())
	}
	if cfg.Review.PageSize != 10 {
		t.Errorf("expected page_size 10, got %d", cfg.Review.PageSize)
	}
	if cfg.Contractor.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Contractor.Seed)
	}
	if cfg.Storage.DBPath != "/tmp/rased-test.db" {
		t.Errorf("unexpected db_path '%s'", cfg.Storage.DBPath)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level 'info', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadConfigWithDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, configPath, "")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.UI.Language != "en" {
		t.Errorf("expected default language 'en', got '%s'", cfg.UI.Language)
	}
	if cfg.Review.PageSize != 5 {
		t.Errorf("expected default page_size 5, got %d", cfg.Review.PageSize)
	}
}

func TestLoadConfigFixesInvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, configPath, `
[ui]
language = "klingon"

[review]
page_size = 0
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI.Language != "en" {
		t.Errorf("unknown language should fall back to en, got '%s'", cfg.UI.Language)
	}
	if cfg.Review.PageSize != 5 {
		t.Errorf("page_size 0 should fall back to 5, got %d", cfg.Review.PageSize)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, configPath, "[ui\nlanguage = ")

	if _, err := Load(configPath); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestLoadOrCreate(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadOrCreate(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Review.PageSize != 5 {
		t.Errorf("expected default page size, got %d", cfg.Review.PageSize)
	}
	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("config file should have been created: %v", err)
	}

	// Round trip through the saved file.
	cfg.UI.Language = "ar"
	if err := Save(configPath, cfg); err != nil {
		t.Fatal(err)
	}
	again, err := LoadOrCreate(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if again.UI.Language != "ar" {
		t.Errorf("expected saved language 'ar', got '%s'", again.UI.Language)
	}
}

func TestApplyEnvFromFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	writeFile(t, envPath, "RASED_LANG=ar\nRASED_DB=/data/rased.db\nRASED_PAGE_SIZE=8\n")

	cfg := DefaultConfig()
	if err := ApplyEnv(cfg, envPath); err != nil {
		t.Fatal(err)
	}
	if cfg.UI.Language != "ar" {
		t.Errorf("expected language from .env, got '%s'", cfg.UI.Language)
	}
	if cfg.Storage.DBPath != "/data/rased.db" {
		t.Errorf("expected db path from .env, got '%s'", cfg.Storage.DBPath)
	}
	if cfg.Review.PageSize != 8 {
		t.Errorf("expected page size 8, got %d", cfg.Review.PageSize)
	}
}

func TestApplyEnvProcessWins(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	writeFile(t, envPath, "RASED_LANG=ar\nRASED_LOG_LEVEL=debug\n")
	t.Setenv(EnvLanguage, "en")

	cfg := DefaultConfig()
	if err := ApplyEnv(cfg, envPath); err != nil {
		t.Fatal(err)
	}
	if cfg.UI.Language != "en" {
		t.Errorf("process env should win, got '%s'", cfg.UI.Language)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level from .env, got '%s'", cfg.Logging.Level)
	}
}

func TestApplyEnvMissingFile(t *testing.T) {
	cfg := DefaultConfig()
	if err := ApplyEnv(cfg, filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
}

func TestApplyEnvBadPageSize(t *testing.T) {
	t.Setenv(EnvPageSize, "many")
	cfg := DefaultConfig()
	if err := ApplyEnv(cfg, ""); err == nil {
		t.Fatal("expected error for non-numeric page size")
	}
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("unexpected default path %s", path)
	}
}
