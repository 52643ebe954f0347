package stockroom

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the CLI and the web front end. It is
// read from an optional YAML file; absent file or fields fall back to the
// defaults below, and command-line flags override both.
type Config struct {
	// DataDir is the directory holding the inventory and sales snapshots.
	DataDir string `yaml:"data_dir"`
	// Listen is the address the web front end binds to.
	Listen string `yaml:"listen"`
	// Currency is the ISO code applied to prices entered without one.
	Currency string `yaml:"currency"`
	// LogFile receives one line per mutating operation. Empty disables it.
	LogFile string `yaml:"log_file"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		DataDir:  ".",
		Listen:   ":8080",
		Currency: DefaultCurrency,
		LogFile:  "inventory.log",
	}
}

// LoadConfig reads the YAML config file at path. A missing file is not an
// error and yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	return cfg, nil
}
