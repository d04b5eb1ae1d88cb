package service

import (
	"fmt"
	"sync"

	carderr "github.com/sirxnine/cartas/internal/errors"
	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/store"
)

// DeckService holds the active deck preset with config overrides applied.
// The deck is chosen once at startup; later config reloads only change the
// display settings (title and image URLs).
type DeckService struct {
	mu      sync.RWMutex
	preset  model.Deck
	current model.Deck
	cards   *CardService
}

// NewDeckService resolves the configured deck and applies its overrides.
func NewDeckService(cfg *model.AppConfig) (*DeckService, error) {
	preset, ok := model.LookupDeck(cfg.DeckName())
	if !ok {
		return nil, carderr.DeckNotFound(cfg.DeckName())
	}

	current := *preset
	cfg.ApplyDisplay(&current)

	return &DeckService{
		preset:  *preset,
		current: current,
	}, nil
}

// BindCards makes Reload push fallback image changes into cards.
func (s *DeckService) BindCards(cards *CardService) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = cards
}

// Deck returns a copy of the active deck.
func (s *DeckService) Deck() model.Deck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := s.current
	d.Cards = append([]model.Card(nil), d.Cards...)
	return d
}

// SeedCards returns the cards the collection starts with: the contents of
// seedPath when set, otherwise the deck fixtures.
func (s *DeckService) SeedCards(seedPath string) ([]model.Card, error) {
	if seedPath != "" {
		return store.LoadSeedFile(seedPath)
	}
	return s.Deck().Cards, nil
}

// Reload re-applies display overrides from cfg on top of the deck preset.
// A different deck name is reported as an error but the display settings
// are still applied.
func (s *DeckService) Reload(cfg *model.AppConfig) error {
	s.mu.Lock()
	current := s.preset
	current.Cards = s.current.Cards
	cfg.ApplyDisplay(&current)
	s.current = current
	cards := s.cards
	presetName := s.preset.Name
	s.mu.Unlock()

	if cards != nil {
		cards.SetFallbackImage(current.FallbackImage)
	}

	if name := cfg.DeckName(); name != presetName {
		return fmt.Errorf("deck changed from %q to %q: restart to switch decks", presetName, name)
	}
	return nil
}
