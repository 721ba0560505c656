package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory and the
// user config directory.
const FileName = ".cstring_test.yaml"

// Output formats.
const (
	FormatAuto     = "auto"
	FormatTerminal = "terminal"
	FormatPlain    = "plain"
	FormatJSON     = "json"
)

// Defaults.
const (
	DefaultFormat = FormatAuto
	DefaultTheme  = "default"
)

var (
	validFormats = map[string]bool{FormatAuto: true, FormatTerminal: true, FormatPlain: true, FormatJSON: true}
	validThemes  = map[string]bool{"default": true, "orca": true, "mono": true}
)

// FileConfig mirrors .cstring_test.yaml.
type FileConfig struct {
	Format          string `yaml:"format,omitempty"`
	Theme           string `yaml:"theme,omitempty"`
	NoColor         bool   `yaml:"no_color"`
	ExpectedVersion string `yaml:"expected_version,omitempty"`
}

// LoadFile reads and parses the config file at path.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

// getConfigPath finds the config file. CSTRING_TEST_CONFIG wins, then the
// working directory, then <user config dir>/cstring. Returns "" when none
// exists.
func getConfigPath() string {
	if p := os.Getenv("CSTRING_TEST_CONFIG"); p != "" {
		return p
	}

	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "cstring", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

// loadFromDisk returns the file config, or nil when there is none or it
// could not be used. Problems are reported to warn.
func loadFromDisk(warn io.Writer) *FileConfig {
	path := getConfigPath()
	if path == "" {
		return nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || os.Getenv("CSTRING_TEST_CONFIG") != "" {
			fmt.Fprintf(warn, "Warning: %v. Using defaults.\n", err)
		}
		return nil
	}
	return cfg
}
