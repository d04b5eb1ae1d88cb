package model

import "sort"

// Deck names.
const (
	DeckClasico  = "clasico"
	DeckProyecto = "proyecto"
)

// DefaultDeck is used when no deck is configured.
const DefaultDeck = DeckClasico

// Deck is a preset for the collection page: the fixture cards it starts
// with, the image substituted for cards created without one, and the image
// shown when a card's image fails to load in the browser.
type Deck struct {
	Name     string
	Title    string
	Subtitle string
	Letter   string // favicon letter
	Color    string // favicon background

	// FallbackImage replaces an empty image URL at creation time.
	// It may itself be empty.
	FallbackImage string

	// BrokenImage is only ever used for display, never stored.
	BrokenImage string

	Cards []Card
}

var decks = map[string]Deck{
	DeckClasico: {
		Name:          DeckClasico,
		Title:         "CRUD de Cartas",
		Letter:        "C",
		Color:         "#3b82f6",
		FallbackImage: "https://via.placeholder.com/300x200/6B7280/FFFFFF?text=Sin+Imagen",
		BrokenImage:   "https://via.placeholder.com/300x200/6B7280/FFFFFF?text=Imagen+No+Disponible",
		Cards: []Card{
			{
				ID:          1,
				Name:        "Dragón Blanco",
				Description: "Un poderoso dragón de luz",
				Attack:      3000,
				Defense:     2500,
				ImageURL:    "https://via.placeholder.com/300x200/4F46E5/FFFFFF?text=Dragón+Blanco",
			},
		},
	},
	DeckProyecto: {
		Name:          DeckProyecto,
		Title:         "Colección de Cartas Fantasticas",
		Subtitle:      "Administra tu mazo de Cartas Brouh",
		Letter:        "P",
		Color:         "#9333ea",
		FallbackImage: "",
		BrokenImage:   "https://i.pinimg.com/474x/68/ba/fd/68bafdcf2f9dc6e86a5f1170bba06359.jpg",
		Cards: []Card{
			{
				ID:          1,
				Name:        "Mori Jin",
				Description: "El Rey Mono",
				Attack:      1000000,
				Defense:     1000000,
				ImageURL:    "https://images.wallpapersden.com/image/download/the-god-of-high-school-jin-mori_bGdpZ2WUmZqaraWkpJRqZmdlrWdtbWU.jpg",
			},
			{
				ID:          2,
				Name:        "Daewi Han",
				Description: "Guardian de la tierra",
				Attack:      500000,
				Defense:     500000,
				ImageURL:    "https://comicvine.gamespot.com/a/uploads/original/11144/111444934/8608995-6cd91d59-41c0-4f22-b3b1-c7a129025814.jpeg",
			},
		},
	},
}

// LookupDeck returns a copy of the named deck preset.
func LookupDeck(name string) (*Deck, bool) {
	d, ok := decks[name]
	if !ok {
		return nil, false
	}
	d.Cards = append([]Card(nil), d.Cards...)
	return &d, true
}

// DeckNames returns the known deck names, sorted.
func DeckNames() []string {
	names := make([]string, 0, len(decks))
	for name := range decks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
