package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Marshal encodes the config as TOML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal TOML: %w", err)
	}
	return data, nil
}

// Save writes the config to path, creating parent directories. An existing
// file is left alone unless force is set.
func (c *Config) Save(path string, force bool) error {
	expandedPath := ExpandPath(path)

	if !force {
		if _, err := os.Stat(expandedPath); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", AbbreviatePath(expandedPath))
		}
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	dir := filepath.Dir(expandedPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(expandedPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write TOML file %s: %w", path, err)
	}
	return nil
}
