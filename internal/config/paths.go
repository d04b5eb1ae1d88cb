package config

import (
	"os"
	"path/filepath"
)

const (
	AppDirName     = "cartas"
	ConfigFileName = "config.toml"
)

// Paths resolves where cartas reads its config from.
type Paths struct {
	configPath string // explicit --config override, empty for default
}

// NewPaths creates a resolver. An empty configPath means the default location.
func NewPaths(configPath string) *Paths {
	return &Paths{configPath: configPath}
}

// ConfigPath returns the config file path.
func (p *Paths) ConfigPath() string {
	if p.configPath != "" {
		return p.configPath
	}
	return DefaultConfigPath()
}

// ConfigDir returns the directory holding the config file.
func (p *Paths) ConfigDir() string {
	return filepath.Dir(p.ConfigPath())
}

// ResolveSeedPath resolves a seed file path relative to the config directory.
func (p *Paths) ResolveSeedPath(seedFile string) string {
	if seedFile == "" || filepath.IsAbs(seedFile) {
		return seedFile
	}
	return filepath.Join(p.ConfigDir(), seedFile)
}

// XDGConfigHome returns XDG_CONFIG_HOME or ~/.config.
func XDGConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns ~/.config/cartas/config.toml, honouring XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	base := XDGConfigHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, AppDirName, ConfigFileName)
}
