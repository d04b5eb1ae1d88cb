package model

import "strconv"

// Card is one collectible record in the collection.
// ID is assigned by the store and never taken from user input.
type Card struct {
	ID          int    `json:"id" toml:"id" yaml:"id"`
	Name        string `json:"name" toml:"name" yaml:"name"`
	Description string `json:"description" toml:"description" yaml:"description"`
	Attack      int    `json:"attack" toml:"attack" yaml:"attack"`
	Defense     int    `json:"defense" toml:"defense" yaml:"defense"`
	ImageURL    string `json:"image_url" toml:"image_url" yaml:"image_url"`
}

// Clone returns a copy of the card so callers can't mutate stored state.
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

// Draft is the single form buffer. Fields hold raw text exactly as typed;
// numbers are only parsed when the draft is submitted.
type Draft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Attack      string `json:"attack"`
	Defense     string `json:"defense"`
	ImageURL    string `json:"image_url"`

	// EditingID is set while the draft edits an existing card.
	// Nil means submitting the draft creates a new card.
	EditingID *int `json:"editing_id,omitempty"`
}

// DraftFromCard copies every field of card into a draft as text and marks the
// draft as editing that card.
func DraftFromCard(card *Card) Draft {
	id := card.ID
	return Draft{
		Name:        card.Name,
		Description: card.Description,
		Attack:      strconv.Itoa(card.Attack),
		Defense:     strconv.Itoa(card.Defense),
		ImageURL:    card.ImageURL,
		EditingID:   &id,
	}
}

// Editing reports the id being edited, if any.
func (d Draft) Editing() (int, bool) {
	if d.EditingID == nil {
		return 0, false
	}
	return *d.EditingID, true
}

// Clear resets every field and drops the editing id.
func (d *Draft) Clear() {
	*d = Draft{}
}

// IsEmpty reports whether the draft holds no text and edits nothing.
func (d Draft) IsEmpty() bool {
	return d.Name == "" && d.Description == "" && d.Attack == "" &&
		d.Defense == "" && d.ImageURL == "" && d.EditingID == nil
}
