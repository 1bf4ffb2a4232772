package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory and in the
// user config directory.
const FileName = ".termbg.yaml"

// Defaults.
const (
	DefaultTimeout        = "100ms"
	DefaultLatencyTimeout = "1s"
	DefaultFormat         = FormatAuto
	DefaultStyle          = StyleDefault
	DefaultLogLevel       = "warn"
)

// Output formats.
const (
	FormatAuto     = "auto"
	FormatTerminal = "terminal"
	FormatPlain    = "plain"
	FormatJSON     = "json"
)

// Render styles.
const (
	StyleDefault = "default"
	StyleMono    = "mono"
)

// FileConfig mirrors .termbg.yaml. Unset fields are left to lower-priority
// sources.
type FileConfig struct {
	Timeout        string `yaml:"timeout,omitempty"`
	LatencyTimeout string `yaml:"latency_timeout,omitempty"`
	Format         string `yaml:"format,omitempty"`
	Style          string `yaml:"style,omitempty"`
	NoColor        *bool  `yaml:"no_color,omitempty"`
	LogFile        string `yaml:"log_file,omitempty"`
	LogLevel       string `yaml:"log_level,omitempty"`
}

// LoadFile reads the config file. An explicit path must exist; without one
// the default locations are searched and a missing file yields an empty
// config. The returned path is empty when no file was read.
func LoadFile(explicit string) (*FileConfig, string, error) {
	path := explicit
	if path == "" {
		path = getConfigPath()
		if path == "" {
			return &FileConfig{}, "", nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit == "" && errors.Is(err, os.ErrNotExist) {
			return &FileConfig{}, "", nil
		}
		return nil, "", fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, "", fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, path, nil
}

// getConfigPath returns the first existing config file: the working
// directory first, then the user config directory.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "termbg", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
