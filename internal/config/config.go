package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ContentConfig holds documentation-body settings.
type ContentConfig struct {
	Unary []string `toml:"unary"` // unary kinds; nil means the built-in list
}

// Config holds the docsweep configuration.
type Config struct {
	Workers  int           `toml:"workers"`   // parallel file units, 0 = NumCPU
	Policy   string        `toml:"policy"`    // survivor policy name
	IndexDir string        `toml:"index_dir"` // index subtree name under the root
	Content  ContentConfig `toml:"content"`
}

// DefaultIndexDir is the conventional name of the authoritative-index
// subtree.
const DefaultIndexDir = "FrameworksIndex"

// Default returns the default configuration.
func Default() Config {
	return Config{
		Workers:  0,
		Policy:   "keep-first",
		IndexDir: DefaultIndexDir,
	}
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "docsweep", "config.toml"), nil
}

// Load reads config from ~/.config/docsweep/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges. Policy names are resolved where the
// policy is constructed.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.IndexDir == "" {
		return fmt.Errorf("index_dir must not be empty")
	}
	if filepath.IsAbs(c.IndexDir) || c.IndexDir != filepath.Base(c.IndexDir) {
		return fmt.Errorf("index_dir must be a bare directory name, got %q", c.IndexDir)
	}
	return nil
}
