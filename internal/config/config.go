package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// GeneralConfig holds the general scanner options
type GeneralConfig struct {
	// Verbose enables per-directory and per-track narration during scans
	Verbose bool `yaml:"verbose"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DirectoriesConfig holds the directory roots to traverse
type DirectoriesConfig struct {
	// Scan is the ordered list of root paths; order defines traversal order
	Scan []string `yaml:"scan"`
}

// TypesConfig holds the extension whitelist
type TypesConfig struct {
	// Valid is the list of extensions treated as audio files (case-insensitive)
	Valid []string `yaml:"valid"`
}

// Config represents scanner configuration options
type Config struct {
	General     GeneralConfig     `yaml:"general"`
	Directories DirectoriesConfig `yaml:"directories"`
	Types       TypesConfig       `yaml:"types"`

	// validSet is the normalized lowercase extension set built by Validate
	validSet map[string]bool
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			Verbose:  false,
			LogLevel: "info",
		},
	}
}

// Load loads configuration from the specified file path.
// Unlike optional tool configs, a missing or malformed file is an error:
// the scanner has nothing useful to do without roots and a type whitelist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the CLI user
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate validates the configuration values and builds the normalized
// extension set used by IsValidType.
func (c *Config) Validate() error {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.General.LogLevel)] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.General.LogLevel)
	}

	if len(c.Directories.Scan) == 0 {
		return fmt.Errorf("directories.scan must list at least one root path")
	}
	for i, dir := range c.Directories.Scan {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("directories.scan[%d] is empty", i)
		}
	}

	if len(c.Types.Valid) == 0 {
		return fmt.Errorf("types.valid must list at least one extension")
	}

	c.validSet = make(map[string]bool, len(c.Types.Valid))
	for _, ext := range c.Types.Valid {
		// Extensions are stored without the leading dot, lowercased
		normalized := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if normalized == "" {
			return fmt.Errorf("types.valid contains an empty extension")
		}
		c.validSet[normalized] = true
	}

	return nil
}

// IsValidType reports whether the extension key is in the configured
// valid-type set. Keys are expected lowercase (see classify.Key).
func (c *Config) IsValidType(key string) bool {
	return c.validSet[key]
}
