package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirxnine/cartas/internal/config"
	carderr "github.com/sirxnine/cartas/internal/errors"
	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/store"
)

func newInitService(t *testing.T) (*InitService, *store.FileConfigStore) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cartas", "config.toml")
	configStore := store.NewConfigStore(config.NewPaths(path))
	return NewInitService(configStore), configStore
}

func TestInitService_WritesConfig(t *testing.T) {
	svc, configStore := newInitService(t)
	assert.False(t, svc.Exists())

	cfg, err := svc.Initialize(InitOptions{Deck: model.DeckProyecto, Title: " Mi Mazo ", Port: 8080})
	require.NoError(t, err)
	assert.Equal(t, "Mi Mazo", cfg.Title)
	assert.True(t, svc.Exists())

	loaded, err := configStore.Load()
	require.NoError(t, err)
	assert.Equal(t, model.DeckProyecto, loaded.Deck)
	assert.Equal(t, "Mi Mazo", loaded.Title)
	assert.Equal(t, 8080, loaded.Port)
}

func TestInitService_DefaultDeck(t *testing.T) {
	svc, _ := newInitService(t)

	cfg, err := svc.Initialize(InitOptions{})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultDeck, cfg.Deck)
}

func TestInitService_UnknownDeck(t *testing.T) {
	svc, _ := newInitService(t)

	_, err := svc.Initialize(InitOptions{Deck: "tarot"})
	require.Error(t, err)
	assert.True(t, carderr.IsValidationError(err))
	assert.Contains(t, err.Error(), "clasico, proyecto")
	assert.False(t, svc.Exists())
}

func TestInitService_RefusesOverwrite(t *testing.T) {
	svc, configStore := newInitService(t)
	_, err := svc.Initialize(InitOptions{Title: "Primero"})
	require.NoError(t, err)

	_, err = svc.Initialize(InitOptions{Title: "Segundo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = svc.Initialize(InitOptions{Title: "Segundo", Force: true})
	require.NoError(t, err)
	loaded, err := configStore.Load()
	require.NoError(t, err)
	assert.Equal(t, "Segundo", loaded.Title)
}

func TestInitService_BadPort(t *testing.T) {
	svc, _ := newInitService(t)

	_, err := svc.Initialize(InitOptions{Port: 70000})
	assert.True(t, carderr.IsValidationError(err))
}
