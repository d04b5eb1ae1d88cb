package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	carderr "github.com/sirxnine/cartas/internal/errors"
	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/store"
)

func TestNewDeckService(t *testing.T) {
	svc, err := NewDeckService(&model.AppConfig{})
	require.NoError(t, err)
	assert.Equal(t, model.DeckClasico, svc.Deck().Name)

	svc, err = NewDeckService(&model.AppConfig{Deck: model.DeckProyecto, Title: "Mazo"})
	require.NoError(t, err)
	deck := svc.Deck()
	assert.Equal(t, "Mazo", deck.Title)
	assert.Len(t, deck.Cards, 2)

	_, err = NewDeckService(&model.AppConfig{Deck: "tarot"})
	assert.True(t, carderr.IsNotFound(err))
}

func TestDeckService_SeedCards(t *testing.T) {
	svc, err := NewDeckService(&model.AppConfig{Deck: model.DeckProyecto})
	require.NoError(t, err)

	cards, err := svc.SeedCards("")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Mori Jin", cards[0].Name)

	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[cards]]\nname = \"X\"\ndescription = \"y\"\n"), 0644))

	cards, err = svc.SeedCards(path)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "X", cards[0].Name)
}

func TestDeckService_ReloadUpdatesDisplayAndFallback(t *testing.T) {
	decks, err := NewDeckService(&model.AppConfig{})
	require.NoError(t, err)
	cards := NewCardService(store.NewCardStore(), decks.Deck().FallbackImage)
	decks.BindCards(cards)

	require.NoError(t, decks.Reload(&model.AppConfig{Title: "Nuevo", FallbackImage: "f.png"}))
	assert.Equal(t, "Nuevo", decks.Deck().Title)
	assert.Equal(t, "f.png", cards.FallbackImage())

	// Dropping the override goes back to the preset
	require.NoError(t, decks.Reload(&model.AppConfig{}))
	assert.Equal(t, "CRUD de Cartas", decks.Deck().Title)
	assert.Equal(t, placeholder, cards.FallbackImage())
}

func TestDeckService_ReloadDeckChange(t *testing.T) {
	decks, err := NewDeckService(&model.AppConfig{})
	require.NoError(t, err)

	err = decks.Reload(&model.AppConfig{Deck: model.DeckProyecto, Title: "T"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "restart")
	assert.Equal(t, model.DeckClasico, decks.Deck().Name)
	assert.Equal(t, "T", decks.Deck().Title)
}
