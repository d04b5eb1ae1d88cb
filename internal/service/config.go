package service

import (
	"github.com/sirxnine/cartas/internal/config"
	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/store"
)

// DefaultPort is used when neither the config file nor CARTAS_PORT sets one.
const DefaultPort = 3000

// LoadConfig reads the config file and overlays CARTAS_* environment variables.
func LoadConfig(configStore store.ConfigStore) (*model.AppConfig, error) {
	cfg, err := configStore.Load()
	if err != nil {
		return nil, err
	}
	if err := config.ParseEnv(cfg); err != nil {
		return nil, err
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	return cfg, nil
}
