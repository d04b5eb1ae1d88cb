package model

import (
	"testing"
)

func TestDraftFromCard(t *testing.T) {
	card := &Card{
		ID:          7,
		Name:        "Dragón Blanco",
		Description: "Un poderoso dragón de luz",
		Attack:      3000,
		Defense:     -5,
		ImageURL:    "https://example.com/dragon.png",
	}

	d := DraftFromCard(card)

	if d.Name != card.Name || d.Description != card.Description {
		t.Errorf("text fields not copied: %+v", d)
	}
	if d.Attack != "3000" {
		t.Errorf("Attack = %q, want %q", d.Attack, "3000")
	}
	if d.Defense != "-5" {
		t.Errorf("Defense = %q, want %q", d.Defense, "-5")
	}
	if d.ImageURL != card.ImageURL {
		t.Errorf("ImageURL = %q, want %q", d.ImageURL, card.ImageURL)
	}
	id, ok := d.Editing()
	if !ok || id != 7 {
		t.Errorf("Editing() = (%d, %v), want (7, true)", id, ok)
	}

	// The draft must not alias the card
	card.ID = 99
	if id, _ := d.Editing(); id != 7 {
		t.Errorf("editing id followed card mutation: %d", id)
	}
}

func TestDraft_Clear(t *testing.T) {
	d := DraftFromCard(&Card{ID: 1, Name: "A", Description: "d", Attack: 1, Defense: 2, ImageURL: "x"})
	if d.IsEmpty() {
		t.Fatal("loaded draft reported empty")
	}

	d.Clear()

	if !d.IsEmpty() {
		t.Errorf("draft not empty after Clear: %+v", d)
	}
	if _, ok := d.Editing(); ok {
		t.Error("editing id survived Clear")
	}
}

func TestDraft_QueriesOnReturnedValue(t *testing.T) {
	snapshot := func(id int) Draft {
		return DraftFromCard(&Card{ID: id, Name: "A"})
	}

	if id, ok := snapshot(3).Editing(); !ok || id != 3 {
		t.Errorf("Editing() = (%d, %v), want (3, true)", id, ok)
	}
	if snapshot(3).IsEmpty() {
		t.Error("loaded draft reported empty")
	}
	if !(Draft{}).IsEmpty() {
		t.Error("zero draft reported non-empty")
	}
}

func TestCard_Clone(t *testing.T) {
	orig := &Card{ID: 1, Name: "A"}
	cp := orig.Clone()
	cp.Name = "B"
	if orig.Name != "A" {
		t.Errorf("Clone shares state with original")
	}
}

func TestLookupDeck(t *testing.T) {
	tests := []struct {
		name         string
		wantCards    int
		wantFallback string
	}{
		{DeckClasico, 1, "https://via.placeholder.com/300x200/6B7280/FFFFFF?text=Sin+Imagen"},
		{DeckProyecto, 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck, ok := LookupDeck(tt.name)
			if !ok {
				t.Fatalf("deck %q not found", tt.name)
			}
			if len(deck.Cards) != tt.wantCards {
				t.Errorf("got %d cards, want %d", len(deck.Cards), tt.wantCards)
			}
			if deck.FallbackImage != tt.wantFallback {
				t.Errorf("FallbackImage = %q, want %q", deck.FallbackImage, tt.wantFallback)
			}
			if deck.BrokenImage == "" {
				t.Error("BrokenImage should always be set")
			}
		})
	}

	if _, ok := LookupDeck("nope"); ok {
		t.Error("unknown deck should not be found")
	}
}

func TestLookupDeck_ReturnsCopy(t *testing.T) {
	a, _ := LookupDeck(DeckClasico)
	a.Cards[0].Name = "changed"
	a.Title = "changed"

	b, _ := LookupDeck(DeckClasico)
	if b.Cards[0].Name == "changed" || b.Title == "changed" {
		t.Error("LookupDeck leaked mutations into the preset")
	}
}

func TestDeckNames(t *testing.T) {
	names := DeckNames()
	if len(names) != 2 || names[0] != DeckClasico || names[1] != DeckProyecto {
		t.Errorf("DeckNames() = %v", names)
	}
}

func TestAppConfig_DeckName(t *testing.T) {
	cfg := &AppConfig{}
	if cfg.DeckName() != DefaultDeck {
		t.Errorf("empty config should use default deck, got %q", cfg.DeckName())
	}
	cfg.Deck = DeckProyecto
	if cfg.DeckName() != DeckProyecto {
		t.Errorf("got %q, want %q", cfg.DeckName(), DeckProyecto)
	}
}

func TestAppConfig_ApplyDisplay(t *testing.T) {
	deck, _ := LookupDeck(DeckProyecto)

	(&AppConfig{}).ApplyDisplay(deck)
	if deck.FallbackImage != "" || deck.Title != "Colección de Cartas Fantasticas" {
		t.Errorf("empty config changed deck: %+v", deck)
	}

	cfg := &AppConfig{Title: "Mi mazo", FallbackImage: "f.png", BrokenImage: "b.png"}
	cfg.ApplyDisplay(deck)
	if deck.Title != "Mi mazo" || deck.FallbackImage != "f.png" || deck.BrokenImage != "b.png" {
		t.Errorf("overrides not applied: %+v", deck)
	}
}
