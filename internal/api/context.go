package api

import (
	"log"

	"github.com/sirxnine/cartas/internal/config"
	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/service"
	"github.com/sirxnine/cartas/internal/store"
)

// AppContext bundles everything the server needs: config, the deck and the
// card collection it was seeded from.
type AppContext struct {
	Paths       *config.Paths
	ConfigStore store.ConfigStore
	Config      *model.AppConfig // as loaded at startup
	CardService *service.CardService
	DeckService *service.DeckService
}

// BuildAppContext loads config and wires the services. configPath may be
// empty for the default location.
//
// This performs no disk writes.
func BuildAppContext(configPath string) (*AppContext, error) {
	paths := config.NewPaths(configPath)
	configStore := store.NewConfigStore(paths)

	cfg, err := service.LoadConfig(configStore)
	if err != nil {
		return nil, err
	}

	return NewAppContext(paths, configStore, cfg)
}

// NewAppContext wires the services from an already loaded config.
func NewAppContext(paths *config.Paths, configStore store.ConfigStore, cfg *model.AppConfig) (*AppContext, error) {
	deckService, err := service.NewDeckService(cfg)
	if err != nil {
		return nil, err
	}

	seed, err := deckService.SeedCards(paths.ResolveSeedPath(cfg.SeedFile))
	if err != nil {
		return nil, err
	}
	cardStore, err := store.NewSeededCardStore(seed)
	if err != nil {
		return nil, err
	}

	cardService := service.NewCardService(cardStore, deckService.Deck().FallbackImage)
	deckService.BindCards(cardService)

	return &AppContext{
		Paths:       paths,
		ConfigStore: configStore,
		Config:      cfg,
		CardService: cardService,
		DeckService: deckService,
	}, nil
}

// LoadConfig re-reads the config file with env overrides applied.
func (a *AppContext) LoadConfig() (*model.AppConfig, error) {
	return service.LoadConfig(a.ConfigStore)
}

// OnConfigChange implements ConfigSubscriber by applying the new display settings.
func (a *AppContext) OnConfigChange(cfg *model.AppConfig) {
	if err := a.DeckService.Reload(cfg); err != nil {
		log.Printf("Warning: %v", err)
	}
}
