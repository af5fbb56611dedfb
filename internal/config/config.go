package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/TheIllusionist93/DOCTOR/internal/domain"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings of one shootwall invocation. The
// schedule itself lives in the project file; this only says where to find it
// and how to run.
type Config struct {
	// ProjectFile is the YAML/JSON project path; empty uses the built-in
	// DOCTOR project.
	ProjectFile string
	// Output overrides the project file's output path.
	Output      string
	LogLevel    string
	Environment string
	FontPath    string
	// Today pins the date progress is computed for; nil means the wall clock.
	Today *domain.Date
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		Environment: "development",
	}
}

// LoadConfig reads configuration from SHOOTWALL_* environment variables,
// falling back to defaults for any unset values. envFiles are loaded first
// (".env" when none are given); missing files are ignored and variables
// already set in the environment win.
func LoadConfig(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)

	cfg := DefaultConfig()

	if v := os.Getenv("SHOOTWALL_CONFIG"); v != "" {
		cfg.ProjectFile = v
	}
	if v := os.Getenv("SHOOTWALL_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("SHOOTWALL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("SHOOTWALL_ENV"); v != "" {
		cfg.Environment = strings.ToLower(v)
	}
	if v := os.Getenv("SHOOTWALL_FONT"); v != "" {
		cfg.FontPath = v
	}
	if v := os.Getenv("SHOOTWALL_TODAY"); v != "" {
		d, err := domain.ParseDate(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid SHOOTWALL_TODAY: %w", err)
		}
		cfg.Today = &d
	}

	return cfg, nil
}

// IsProduction reports whether logs should be machine-readable.
func (c Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "staging"
}
