package model

// AppConfig is the user's cartas configuration.
// Stored at ~/.config/cartas/config.toml; every field can be overridden by
// the matching CARTAS_* environment variable.
type AppConfig struct {
	Deck          string `toml:"deck,omitempty" env:"CARTAS_DECK"`
	Title         string `toml:"title,omitempty" env:"CARTAS_TITLE"`
	Port          int    `toml:"port,omitempty" env:"CARTAS_PORT"`
	FallbackImage string `toml:"fallback_image,omitempty" env:"CARTAS_FALLBACK_IMAGE"`
	BrokenImage   string `toml:"broken_image,omitempty" env:"CARTAS_BROKEN_IMAGE"`
	SeedFile      string `toml:"seed_file,omitempty" env:"CARTAS_SEED_FILE"`
	Editor        string `toml:"editor,omitempty" env:"CARTAS_EDITOR"`
}

// DeckName returns the configured deck, or the default when unset.
func (c *AppConfig) DeckName() string {
	if c.Deck == "" {
		return DefaultDeck
	}
	return c.Deck
}

// ApplyDisplay overlays the configured title and image URLs onto deck.
// Empty values leave the deck preset untouched.
func (c *AppConfig) ApplyDisplay(deck *Deck) {
	if c.Title != "" {
		deck.Title = c.Title
	}
	if c.FallbackImage != "" {
		deck.FallbackImage = c.FallbackImage
	}
	if c.BrokenImage != "" {
		deck.BrokenImage = c.BrokenImage
	}
}
