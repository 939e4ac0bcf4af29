package config

// DefaultConfig returns configuration with sensible defaults. Empty paths
// are resolved under the user config directory at startup.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Language: "en",
		},
		Review: ReviewConfig{
			PageSize: 5,
		},
		Contractor: ContractorConfig{
			Seed: 0,
		},
		Storage: StorageConfig{
			DBPath: "",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}
