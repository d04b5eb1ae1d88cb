package resolver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	carderr "github.com/sirxnine/cartas/internal/errors"
	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/prompt"
	"github.com/sirxnine/cartas/internal/util"
)

// CardLister lists the collection. Satisfied by *client.Client.
type CardLister interface {
	ListCards(ctx context.Context, query string) ([]model.Card, error)
}

// CardResolver resolves a card argument given on the command line.
type CardResolver struct {
	cards    CardLister
	prompter prompt.Prompter
}

// NewCardResolver creates a new card resolver.
func NewCardResolver(cards CardLister, prompter prompt.Prompter) *CardResolver {
	return &CardResolver{cards: cards, prompter: prompter}
}

// Resolve finds a card by id or by name.
// Numeric arguments are ids. Otherwise the name is compared ignoring case and
// accents; several cards with that name are disambiguated with a prompt.
func (r *CardResolver) Resolve(ctx context.Context, arg string) (*model.Card, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, carderr.RequiredField("card")
	}

	cards, err := r.cards.ListCards(ctx, "")
	if err != nil {
		return nil, err
	}

	if id, err := strconv.Atoi(arg); err == nil {
		for i := range cards {
			if cards[i].ID == id {
				return &cards[i], nil
			}
		}
		return nil, carderr.CardNotFound(id)
	}

	want := util.Slug(arg)
	var matches []*model.Card
	for i := range cards {
		if util.Slug(cards[i].Name) == want {
			matches = append(matches, &cards[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, &carderr.NotFoundError{Resource: "card", ID: arg}
	case 1:
		return matches[0], nil
	}
	return r.choose(arg, matches)
}

func (r *CardResolver) choose(arg string, matches []*model.Card) (*model.Card, error) {
	options := make([]string, len(matches))
	byOption := make(map[string]*model.Card, len(matches))
	for i, c := range matches {
		options[i] = fmt.Sprintf("%d  %s", c.ID, c.Name)
		byOption[options[i]] = c
	}

	choice, err := r.prompter.Select(fmt.Sprintf("Varias cartas se llaman %q", arg), options)
	if err != nil {
		if errors.Is(err, prompt.ErrNonInteractive) {
			return nil, carderr.InvalidField("card", fmt.Sprintf("%q matches %d cards, use the id", arg, len(matches)))
		}
		return nil, err
	}
	return byOption[choice], nil
}
