package service

import (
	"strconv"
	"strings"
	"sync"

	carderr "github.com/sirxnine/cartas/internal/errors"
	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/store"
	"github.com/sirxnine/cartas/internal/util"
)

// CardChangeOp names the kind of collection change.
type CardChangeOp string

const (
	CardCreated CardChangeOp = "created"
	CardUpdated CardChangeOp = "updated"
	CardDeleted CardChangeOp = "deleted"
)

// CardChange describes one change to the collection.
type CardChange struct {
	Op CardChangeOp `json:"op"`
	ID int          `json:"id"`
}

// CardSubscriber receives collection change notifications.
type CardSubscriber interface {
	OnCardChange(change CardChange)
}

// CardService owns the card collection and the single draft form buffer.
//
// Design: single-user, single-session. There is exactly one collection and
// one draft per service, shared by every request. Each operation runs to
// completion under mu, so HTTP handlers never observe a half-applied change.
type CardService struct {
	mu            sync.Mutex
	cardStore     store.CardStore
	draft         model.Draft
	fallbackImage string

	subMu       sync.RWMutex
	subscribers []CardSubscriber
}

// NewCardService creates a new card service.
// fallbackImage replaces an empty image URL when a card is created.
func NewCardService(cardStore store.CardStore, fallbackImage string) *CardService {
	return &CardService{
		cardStore:     cardStore,
		fallbackImage: fallbackImage,
	}
}

// Subscribe registers sub for change notifications.
func (s *CardService) Subscribe(sub CardSubscriber) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}

// SetFallbackImage changes the image substituted on create.
// Existing cards keep whatever URL they were created with.
func (s *CardService) SetFallbackImage(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallbackImage = url
}

// FallbackImage returns the image substituted on create.
func (s *CardService) FallbackImage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fallbackImage
}

// List returns all cards in insertion order. A non-empty query keeps only
// cards whose name or description contains the query words.
func (s *CardService) List(query string) []*model.Card {
	s.mu.Lock()
	cards := s.cardStore.List()
	s.mu.Unlock()

	if strings.TrimSpace(query) == "" {
		return cards
	}

	filtered := make([]*model.Card, 0, len(cards))
	for _, card := range cards {
		if util.MatchesQuery(query, card.Name, card.Description) {
			filtered = append(filtered, card)
		}
	}
	return filtered
}

// Get retrieves a card by id.
func (s *CardService) Get(id int) (*model.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cardStore.Get(id)
}

// Count returns the number of cards.
func (s *CardService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cardStore.Len()
}

// Draft returns a snapshot of the draft buffer.
func (s *CardService) Draft() model.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDraft(s.draft)
}

// SetDraft replaces the draft buffer with raw form values.
func (s *CardService) SetDraft(draft model.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = copyDraft(draft)
}

// ClearDraft resets every draft field and drops the editing id.
func (s *CardService) ClearDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Clear()
}

// LoadForEdit copies card into the draft and marks the draft as editing it.
// The card is not locked: it can still be deleted while being edited.
func (s *CardService) LoadForEdit(card *model.Card) model.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = model.DraftFromCard(card)
	return copyDraft(s.draft)
}

// LoadForEditByID looks the card up and loads it into the draft.
func (s *CardService) LoadForEditByID(id int) (model.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	card, err := s.cardStore.Get(id)
	if err != nil {
		return model.Draft{}, err
	}
	s.draft = model.DraftFromCard(card)
	return copyDraft(s.draft), nil
}

// Submit creates a card from draft, or updates the card it is editing.
// An update whose card no longer exists returns a nil card and no error.
func (s *CardService) Submit(draft model.Draft) (*model.Card, error) {
	if id, ok := draft.Editing(); ok {
		return s.Update(id, draft)
	}
	return s.Create(draft)
}

// Create validates draft, appends a new card and clears the draft.
// An empty image URL is replaced by the fallback image.
func (s *CardService) Create(draft model.Draft) (*model.Card, error) {
	fields, err := parseDraft(draft)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	card := &model.Card{
		Name:        draft.Name,
		Description: draft.Description,
		Attack:      fields.attack,
		Defense:     fields.defense,
		ImageURL:    draft.ImageURL,
	}
	if card.ImageURL == "" {
		card.ImageURL = s.fallbackImage
	}
	if err := s.cardStore.Create(card); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.draft.Clear()
	s.mu.Unlock()

	s.notify(CardChange{Op: CardCreated, ID: card.ID})
	return card, nil
}

// Update validates draft and replaces the fields of card id, keeping its id
// and position. An empty image URL keeps the card's current image.
//
// If id is not in the collection (for example it was deleted while being
// edited) nothing changes and Update returns nil, nil. The draft is cleared
// either way.
func (s *CardService) Update(id int, draft model.Draft) (*model.Card, error) {
	fields, err := parseDraft(draft)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	existing, err := s.cardStore.Get(id)
	if err != nil {
		s.draft.Clear()
		s.mu.Unlock()
		if carderr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	existing.Name = draft.Name
	existing.Description = draft.Description
	existing.Attack = fields.attack
	existing.Defense = fields.defense
	if draft.ImageURL != "" {
		existing.ImageURL = draft.ImageURL
	}
	if err := s.cardStore.Update(existing); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.draft.Clear()
	s.mu.Unlock()

	s.notify(CardChange{Op: CardUpdated, ID: id})
	return existing, nil
}

// Delete removes card id and reports whether it existed.
// The draft is left alone even if it is editing that card.
func (s *CardService) Delete(id int) bool {
	s.mu.Lock()
	err := s.cardStore.Delete(id)
	s.mu.Unlock()

	if err != nil {
		return false
	}
	s.notify(CardChange{Op: CardDeleted, ID: id})
	return true
}

func (s *CardService) notify(change CardChange) {
	s.subMu.RLock()
	subs := make([]CardSubscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.RUnlock()

	for _, sub := range subs {
		sub.OnCardChange(change)
	}
}

type parsedFields struct {
	attack  int
	defense int
}

// parseDraft enforces the required fields and parses the stats.
// Non-numeric stats are rejected rather than stored as garbage.
func parseDraft(draft model.Draft) (parsedFields, error) {
	var f parsedFields

	if strings.TrimSpace(draft.Name) == "" {
		return f, carderr.RequiredField("name")
	}
	if strings.TrimSpace(draft.Description) == "" {
		return f, carderr.RequiredField("description")
	}

	var err error
	if f.attack, err = parseStat("attack", draft.Attack); err != nil {
		return f, err
	}
	if f.defense, err = parseStat("defense", draft.Defense); err != nil {
		return f, err
	}
	return f, nil
}

func parseStat(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, carderr.RequiredField(field)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, carderr.InvalidField(field, strconv.Quote(raw)+" is not a whole number")
	}
	return n, nil
}

func copyDraft(d model.Draft) model.Draft {
	if d.EditingID != nil {
		id := *d.EditingID
		d.EditingID = &id
	}
	return d
}
