package service

import (
	"fmt"
	"os"
	"strings"

	carderr "github.com/sirxnine/cartas/internal/errors"
	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/store"
)

// InitOptions are the settings written by Initialize.
type InitOptions struct {
	Deck  string
	Title string
	Port  int
	Force bool // overwrite an existing config file
}

// InitService writes a starter config file.
type InitService struct {
	configStore store.ConfigStore
}

// NewInitService creates a new init service.
func NewInitService(configStore store.ConfigStore) *InitService {
	return &InitService{configStore: configStore}
}

// Exists reports whether the config file is already there.
func (s *InitService) Exists() bool {
	path := s.configStore.Path()
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Initialize validates opts and writes them to the config file.
func (s *InitService) Initialize(opts InitOptions) (*model.AppConfig, error) {
	if s.configStore.Path() == "" {
		return nil, fmt.Errorf("cannot determine config location: set XDG_CONFIG_HOME or pass --config")
	}
	if s.Exists() && !opts.Force {
		return nil, fmt.Errorf("config already exists at %s (use --force to overwrite)", s.configStore.Path())
	}

	deck := strings.TrimSpace(opts.Deck)
	if deck == "" {
		deck = model.DefaultDeck
	}
	if _, ok := model.LookupDeck(deck); !ok {
		return nil, carderr.InvalidField("deck",
			fmt.Sprintf("unknown deck %q (available: %s)", deck, strings.Join(model.DeckNames(), ", ")))
	}
	if opts.Port < 0 || opts.Port > 65535 {
		return nil, carderr.InvalidField("port", fmt.Sprintf("%d is out of range", opts.Port))
	}

	cfg := &model.AppConfig{
		Deck:  deck,
		Title: strings.TrimSpace(opts.Title),
		Port:  opts.Port,
	}
	if err := s.configStore.Save(cfg); err != nil {
		return nil, fmt.Errorf("failed to write config: %w", err)
	}
	return cfg, nil
}
