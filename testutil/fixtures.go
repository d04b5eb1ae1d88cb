package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirxnine/cartas/internal/config"
	"github.com/sirxnine/cartas/internal/model"
)

// TestCard returns a card with sensible test defaults.
func TestCard(id int, name string) model.Card {
	return model.Card{
		ID:          id,
		Name:        name,
		Description: "Carta de prueba",
		Attack:      1000,
		Defense:     800,
		ImageURL:    "https://example.com/" + name + ".jpg",
	}
}

// TestDraft returns a filled-in draft that creates a valid card.
func TestDraft(name string) model.Draft {
	return model.Draft{
		Name:        name,
		Description: "Carta de prueba",
		Attack:      "1000",
		Defense:     "800",
	}
}

// TempConfigDir creates a temporary config directory, optionally writing
// content to its config.toml. Returns the config file path.
func TempConfigDir(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
	}
	return path
}

// NewTestPaths creates a Paths pointing at configPath.
func NewTestPaths(configPath string) *config.Paths {
	return config.NewPaths(configPath)
}
