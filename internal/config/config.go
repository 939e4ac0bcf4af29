// Package config loads the TOML configuration file, applies environment
// overrides and watches the file for language changes.
package config

// Config holds the rased configuration
type Config struct {
	UI         UIConfig         `toml:"ui"`
	Review     ReviewConfig     `toml:"review"`
	Contractor ContractorConfig `toml:"contractor"`
	Storage    StorageConfig    `toml:"storage"`
	Logging    LoggingConfig    `toml:"logging"`
}

type UIConfig struct {
	Language string `toml:"language"`
}

type ReviewConfig struct {
	PageSize int `toml:"page_size"`
}

type ContractorConfig struct {
	// Seed for the simulated status refresh; 0 seeds from the clock.
	Seed int64 `toml:"seed"`
}

type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
