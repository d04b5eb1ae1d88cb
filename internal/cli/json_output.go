package cli

import (
	"encoding/json"
	"fmt"

	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/util"
)

// cardJson is a card as printed by --json: every model.Card field plus the
// slug that show/edit/delete accept in place of the id.
//
// SYNC WARNING: This struct must stay in sync with model.Card fields.
// See TestCardJsonFieldSync.
type cardJson struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Attack      int    `json:"attack"`
	Defense     int    `json:"defense"`
	ImageURL    string `json:"image_url"`
}

func cardToJson(c *model.Card) cardJson {
	return cardJson{
		ID:          c.ID,
		Slug:        util.Slug(c.Name),
		Name:        c.Name,
		Description: c.Description,
		Attack:      c.Attack,
		Defense:     c.Defense,
		ImageURL:    c.ImageURL,
	}
}

// CardOutput wraps a single card for JSON output.
type CardOutput struct {
	Card cardJson `json:"card"`
}

// NewCardOutput creates a CardOutput from a model.Card.
func NewCardOutput(card *model.Card) CardOutput {
	return CardOutput{Card: cardToJson(card)}
}

// ListOutput wraps a list of cards for JSON output.
type ListOutput struct {
	Cards []cardJson `json:"cards"`
}

// NewListOutput creates a ListOutput.
// Always returns an empty array (not null) when there are no cards.
func NewListOutput(cards []model.Card) ListOutput {
	result := make([]cardJson, 0, len(cards))
	for i := range cards {
		result = append(result, cardToJson(&cards[i]))
	}
	return ListOutput{Cards: result}
}

func printJson(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}
