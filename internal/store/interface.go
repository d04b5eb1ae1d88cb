package store

import "github.com/sirxnine/cartas/internal/model"

// CardStore holds the ordered card collection.
// Implementations are not safe for concurrent use; callers serialise access.
type CardStore interface {
	List() []*model.Card // insertion order
	Get(id int) (*model.Card, error)
	Create(card *model.Card) error // assigns card.ID
	Update(card *model.Card) error
	Delete(id int) error
	Len() int
}

// ConfigStore handles app config persistence.
type ConfigStore interface {
	Load() (*model.AppConfig, error)
	Save(config *model.AppConfig) error
	Path() string
}
