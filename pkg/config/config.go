// Package config loads the optional nvim2idea configuration file
// (~/.config/nvim2idea/config.toml). The file only relocates inputs and
// output; it never changes the translation tables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultNvimDir      = "~/.config/nvim"
	DefaultOutput       = "~/.ideavimrc"
	DefaultSettingsFile = "lua/config/settings.lua"
	DefaultKeymapsFile  = "lua/config/keymaps.lua"
)

// Config holds the effective converter settings.
type Config struct {
	NvimDir      string `toml:"nvim_dir,omitempty" json:"nvim_dir,omitempty" jsonschema:"description=Neovim configuration directory,default=~/.config/nvim"`
	Output       string `toml:"output,omitempty" json:"output,omitempty" jsonschema:"description=Path of the generated .ideavimrc,default=~/.ideavimrc"`
	SettingsFile string `toml:"settings_file,omitempty" json:"settings_file,omitempty" jsonschema:"description=Options file relative to nvim_dir,default=lua/config/settings.lua"`
	KeymapsFile  string `toml:"keymaps_file,omitempty" json:"keymaps_file,omitempty" jsonschema:"description=Keymaps file relative to nvim_dir,default=lua/config/keymaps.lua"`
	Verbose      bool   `toml:"verbose,omitempty" json:"verbose,omitempty" jsonschema:"description=Enable debug logging"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		NvimDir:      DefaultNvimDir,
		Output:       DefaultOutput,
		SettingsFile: DefaultSettingsFile,
		KeymapsFile:  DefaultKeymapsFile,
	}
}

// DefaultPath returns the location of the user config file.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "nvim2idea", "config.toml")
}

// Load reads the config file at path and fills unset fields from the
// defaults. A missing file yields the defaults. Keys the file sets that
// Config does not know are returned so the caller can report them.
func Load(path string) (*Config, []string, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil, nil
	}

	var fileCfg Config
	md, err := toml.DecodeFile(ExpandPath(path), &fileCfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Merge(&fileCfg)

	var unknown []string
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}
	return cfg, unknown, nil
}

// Merge overrides fields of c with the non-zero fields of other.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.NvimDir != "" {
		c.NvimDir = other.NvimDir
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.SettingsFile != "" {
		c.SettingsFile = other.SettingsFile
	}
	if other.KeymapsFile != "" {
		c.KeymapsFile = other.KeymapsFile
	}
	if other.Verbose {
		c.Verbose = true
	}
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// AbbreviatePath replaces the home directory with ~ for display.
func AbbreviatePath(path string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return path
	}
	if path == homeDir || strings.HasPrefix(path, homeDir+string(filepath.Separator)) {
		return "~" + path[len(homeDir):]
	}
	return path
}
