package store

import (
	"fmt"

	carderr "github.com/sirxnine/cartas/internal/errors"
	"github.com/sirxnine/cartas/internal/model"
)

// MemoryCardStore implements CardStore in process memory.
// Nothing is persisted; the collection is gone when the process exits.
type MemoryCardStore struct {
	cards []*model.Card

	// lastID is the highest id this store has ever held. New ids are
	// lastID+1, so an id freed by Delete is never handed out again.
	lastID int
}

// NewCardStore creates an empty card store.
func NewCardStore() *MemoryCardStore {
	return &MemoryCardStore{}
}

// NewSeededCardStore creates a store pre-populated with fixture cards.
func NewSeededCardStore(seed []model.Card) (*MemoryCardStore, error) {
	s := NewCardStore()
	if err := s.Seed(seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Seed appends fixture cards, keeping their ids.
// Cards with a zero id get the next free id. Duplicate or negative ids are rejected.
func (s *MemoryCardStore) Seed(seed []model.Card) error {
	for i := range seed {
		card := seed[i]
		if card.ID < 0 {
			return carderr.InvalidField("id", fmt.Sprintf("seed card %q has negative id %d", card.Name, card.ID))
		}
		if card.ID == 0 {
			if err := s.Create(&card); err != nil {
				return err
			}
			continue
		}
		if s.indexOf(card.ID) >= 0 {
			return carderr.InvalidField("id", fmt.Sprintf("duplicate seed card id %d", card.ID))
		}
		s.cards = append(s.cards, card.Clone())
		if card.ID > s.lastID {
			s.lastID = card.ID
		}
	}
	return nil
}

// List returns copies of all cards in insertion order.
func (s *MemoryCardStore) List() []*model.Card {
	cards := make([]*model.Card, len(s.cards))
	for i, c := range s.cards {
		cards[i] = c.Clone()
	}
	return cards
}

// Get returns a copy of the card with the given id.
func (s *MemoryCardStore) Get(id int) (*model.Card, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, carderr.CardNotFound(id)
	}
	return s.cards[i].Clone(), nil
}

// Create assigns the next id to card and appends it to the collection.
func (s *MemoryCardStore) Create(card *model.Card) error {
	s.lastID++
	card.ID = s.lastID
	s.cards = append(s.cards, card.Clone())
	return nil
}

// Update replaces the stored card with the same id, keeping its position.
func (s *MemoryCardStore) Update(card *model.Card) error {
	i := s.indexOf(card.ID)
	if i < 0 {
		return carderr.CardNotFound(card.ID)
	}
	s.cards[i] = card.Clone()
	return nil
}

// Delete removes the card with the given id.
func (s *MemoryCardStore) Delete(id int) error {
	i := s.indexOf(id)
	if i < 0 {
		return carderr.CardNotFound(id)
	}
	s.cards = append(s.cards[:i], s.cards[i+1:]...)
	return nil
}

// Len returns the number of cards.
func (s *MemoryCardStore) Len() int {
	return len(s.cards)
}

func (s *MemoryCardStore) indexOf(id int) int {
	for i, c := range s.cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}
