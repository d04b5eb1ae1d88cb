package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirxnine/cartas/internal/client"
	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/prompt"
)

// cardFields are card values as typed on the command line.
type cardFields struct {
	Name        string
	Description string
	Attack      string
	Defense     string
	ImageURL    string
}

func fieldsFromCard(card *model.Card) cardFields {
	d := model.DraftFromCard(card)
	return cardFields{
		Name:        d.Name,
		Description: d.Description,
		Attack:      d.Attack,
		Defense:     d.Defense,
		ImageURL:    d.ImageURL,
	}
}

func (f cardFields) isEmpty() bool {
	return f == cardFields{}
}

// over returns base with every non-empty field of f applied on top.
func (f cardFields) over(base cardFields) cardFields {
	if f.Name != "" {
		base.Name = f.Name
	}
	if f.Description != "" {
		base.Description = f.Description
	}
	if f.Attack != "" {
		base.Attack = f.Attack
	}
	if f.Defense != "" {
		base.Defense = f.Defense
	}
	if f.ImageURL != "" {
		base.ImageURL = f.ImageURL
	}
	return base
}

func (f cardFields) input() client.CardInput {
	return client.CardInput{
		Name:        f.Name,
		Description: f.Description,
		Attack:      f.Attack,
		Defense:     f.Defense,
		ImageURL:    f.ImageURL,
	}
}

type fieldPrompt struct {
	title    string
	value    *string
	validate func(string) error
}

func (f *cardFields) prompts() []fieldPrompt {
	return []fieldPrompt{
		{"Nombre", &f.Name, requiredText},
		{"Descripción", &f.Description, requiredText},
		{"Ataque", &f.Attack, wholeNumber},
		{"Defensa", &f.Defense, wholeNumber},
		{"URL de la imagen (opcional)", &f.ImageURL, nil},
	}
}

// promptMissing asks for every empty required field. The image is only asked
// for when askImage is set since leaving it empty is valid.
func promptMissing(p prompt.Prompter, f cardFields, askImage bool) (cardFields, error) {
	for _, fp := range f.prompts() {
		if *fp.value != "" || (fp.validate == nil && !askImage) {
			continue
		}
		v, err := p.Input(fp.title, "", fp.validate)
		if err != nil {
			return f, err
		}
		*fp.value = strings.TrimSpace(v)
	}
	return f, nil
}

// promptAll asks for every field, prefilled with its current value.
func promptAll(p prompt.Prompter, f cardFields) (cardFields, error) {
	for _, fp := range f.prompts() {
		v, err := p.Input(fp.title, *fp.value, fp.validate)
		if err != nil {
			return f, err
		}
		*fp.value = strings.TrimSpace(v)
	}
	return f, nil
}

func requiredText(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

func wholeNumber(s string) error {
	if err := requiredText(s); err != nil {
		return err
	}
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("must be a whole number")
	}
	return nil
}
