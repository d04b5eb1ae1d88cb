package cli

import (
	"errors"
	"testing"

	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/prompt"
)

// scriptedPrompter answers Input prompts from a queue and records titles.
type scriptedPrompter struct {
	prompt.NoopPrompter
	answers  []string
	titles   []string
	defaults []string
}

func (p *scriptedPrompter) Input(title, defaultValue string, validate func(string) error) (string, error) {
	p.titles = append(p.titles, title)
	p.defaults = append(p.defaults, defaultValue)
	if len(p.answers) == 0 {
		return defaultValue, nil
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func TestCardFields_Over(t *testing.T) {
	base := cardFields{Name: "A", Description: "B", Attack: "1", Defense: "2", ImageURL: "u"}
	got := cardFields{Attack: "9"}.over(base)

	want := cardFields{Name: "A", Description: "B", Attack: "9", Defense: "2", ImageURL: "u"}
	if got != want {
		t.Errorf("Got %+v, want %+v", got, want)
	}
}

func TestFieldsFromCard(t *testing.T) {
	card := &model.Card{ID: 1, Name: "Dragón", Description: "Luz", Attack: 3000, Defense: -5, ImageURL: "x"}

	got := fieldsFromCard(card)
	if got.Attack != "3000" || got.Defense != "-5" || got.Name != "Dragón" {
		t.Errorf("Unexpected fields: %+v", got)
	}
}

func TestPromptMissing_OnlyEmptyRequired(t *testing.T) {
	p := &scriptedPrompter{answers: []string{"Saiyan", "8000"}}

	got, err := promptMissing(p, cardFields{Name: "Goku", Attack: "9000"}, false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(p.titles) != 2 || p.titles[0] != "Descripción" || p.titles[1] != "Defensa" {
		t.Errorf("Prompted for %v, want [Descripción Defensa]", p.titles)
	}
	if got.Description != "Saiyan" || got.Defense != "8000" || got.Name != "Goku" {
		t.Errorf("Unexpected fields: %+v", got)
	}
}

func TestPromptMissing_AsksImageWhenRequested(t *testing.T) {
	p := &scriptedPrompter{answers: []string{"A", "B", "1", "2", ""}}

	if _, err := promptMissing(p, cardFields{}, true); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(p.titles) != 5 {
		t.Errorf("Expected 5 prompts, got %v", p.titles)
	}
}

func TestPromptMissing_NonInteractive(t *testing.T) {
	_, err := promptMissing(&prompt.NoopPrompter{}, cardFields{Name: "Goku"}, false)
	if !errors.Is(err, prompt.ErrNonInteractive) {
		t.Errorf("Expected ErrNonInteractive, got %v", err)
	}
}

func TestPromptAll_PrefillsCurrentValues(t *testing.T) {
	p := &scriptedPrompter{}
	current := cardFields{Name: "A", Description: "B", Attack: "1", Defense: "2", ImageURL: "u"}

	got, err := promptAll(p, current)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != current {
		t.Errorf("Got %+v, want unchanged %+v", got, current)
	}
	want := []string{"A", "B", "1", "2", "u"}
	for i, d := range want {
		if p.defaults[i] != d {
			t.Errorf("Default %d = %q, want %q", i, p.defaults[i], d)
		}
	}
}

func TestWholeNumber(t *testing.T) {
	for _, ok := range []string{"0", "10", "-3", " 42 "} {
		if err := wholeNumber(ok); err != nil {
			t.Errorf("wholeNumber(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "  ", "1.5", "abc"} {
		if err := wholeNumber(bad); err == nil {
			t.Errorf("wholeNumber(%q) = nil, want error", bad)
		}
	}
}
