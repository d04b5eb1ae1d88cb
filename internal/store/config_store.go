package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirxnine/cartas/internal/config"
	"github.com/sirxnine/cartas/internal/model"
)

// FileConfigStore implements ConfigStore using a TOML file.
type FileConfigStore struct {
	paths *config.Paths
}

// NewConfigStore creates a new config store.
func NewConfigStore(paths *config.Paths) *FileConfigStore {
	return &FileConfigStore{paths: paths}
}

// Path returns the config file location.
func (s *FileConfigStore) Path() string {
	return s.paths.ConfigPath()
}

// Load reads the config from disk.
// Returns an empty config if the file doesn't exist.
func (s *FileConfigStore) Load() (*model.AppConfig, error) {
	path := s.Path()
	if path == "" {
		return &model.AppConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.AppConfig{}, nil
		}
		return nil, err
	}

	var cfg model.AppConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to disk.
func (s *FileConfigStore) Save(cfg *model.AppConfig) error {
	path := s.Path()
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
