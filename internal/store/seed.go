package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	carderr "github.com/sirxnine/cartas/internal/errors"
	"github.com/sirxnine/cartas/internal/model"
)

// SeedFile is the on-disk layout of a fixture file.
//
//	[[cards]]
//	id = 1
//	name = "Dragón Blanco"
//	...
type SeedFile struct {
	Cards []model.Card `toml:"cards" yaml:"cards"`
}

// LoadSeedFile reads fixture cards from a .toml, .yaml or .yml file.
func LoadSeedFile(path string) ([]model.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &seed)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &seed)
	default:
		return nil, carderr.InvalidField("seed_file", fmt.Sprintf("unsupported extension %q (want .toml, .yaml or .yml)", ext))
	}
	if err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", path, err)
	}

	for i, card := range seed.Cards {
		if card.Name == "" || card.Description == "" {
			return nil, carderr.InvalidField("seed_file", fmt.Sprintf("card #%d needs a name and a description", i+1))
		}
	}

	return seed.Cards, nil
}
