package listener

import "fmt"

// Config holds everything the listener needs to run. It is produced once by
// the CLI sanitizer and never mutated afterwards.
type Config struct {
	Port int

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	ContractPolicy  string
}

// NewConfig validates a candidate configuration and returns an immutable
// copy. Defaults for the logger fields are filled in here so that every App
// sees a complete configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port %d is outside the valid range [1, 65535]", cfg.Port)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}
