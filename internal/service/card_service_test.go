package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	carderr "github.com/sirxnine/cartas/internal/errors"
	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/store"
)

const placeholder = "https://via.placeholder.com/300x200/6B7280/FFFFFF?text=Sin+Imagen"

type recordingSubscriber struct {
	changes []CardChange
}

func (r *recordingSubscriber) OnCardChange(change CardChange) {
	r.changes = append(r.changes, change)
}

func newTestService(t *testing.T, seed ...model.Card) *CardService {
	t.Helper()
	s, err := store.NewSeededCardStore(seed)
	require.NoError(t, err)
	return NewCardService(s, placeholder)
}

func draft(name, desc, attack, defense, image string) model.Draft {
	return model.Draft{Name: name, Description: desc, Attack: attack, Defense: defense, ImageURL: image}
}

func intPtr(i int) *int { return &i }

func TestCardService_CreateFromEmpty(t *testing.T) {
	svc := newTestService(t)

	card, err := svc.Create(draft("A", "d", "10", "5", ""))
	require.NoError(t, err)

	cards := svc.List("")
	require.Len(t, cards, 1)
	assert.Equal(t, &model.Card{ID: 1, Name: "A", Description: "d", Attack: 10, Defense: 5, ImageURL: placeholder}, cards[0])
	assert.Equal(t, cards[0], card)
}

func TestCardService_CreateIDsAreOneToN(t *testing.T) {
	svc := newTestService(t)

	for i := 1; i <= 10; i++ {
		card, err := svc.Create(draft("A", "d", "1", "1", "x"))
		require.NoError(t, err)
		assert.Equal(t, i, card.ID)
	}
	assert.Equal(t, 10, svc.Count())
}

func TestCardService_CreateAfterDelete(t *testing.T) {
	svc := newTestService(t,
		model.Card{ID: 1, Name: "A", Description: "a"},
		model.Card{ID: 2, Name: "B", Description: "b"},
	)

	require.True(t, svc.Delete(1))
	card, err := svc.Create(draft("C", "c", "1", "1", ""))
	require.NoError(t, err)
	assert.Equal(t, 3, card.ID)

	// Deleting the max id must not free it for reuse either
	require.True(t, svc.Delete(3))
	card, err = svc.Create(draft("D", "d", "1", "1", ""))
	require.NoError(t, err)
	assert.Equal(t, 4, card.ID)
}

func TestCardService_CreateClearsDraft(t *testing.T) {
	svc := newTestService(t)
	d := draft("A", "d", "1", "2", "img")
	svc.SetDraft(d)

	_, err := svc.Create(d)
	require.NoError(t, err)

	got := svc.Draft()
	assert.True(t, got.IsEmpty())
}

func TestCardService_CreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		draft model.Draft
		field string
	}{
		{"missing name", draft("", "d", "1", "1", ""), "name"},
		{"blank name", draft("   ", "d", "1", "1", ""), "name"},
		{"missing description", draft("A", "", "1", "1", ""), "description"},
		{"blank description", draft("A", "\t\n ", "1", "1", ""), "description"},
		{"missing attack", draft("A", "d", "", "1", ""), "attack"},
		{"non-numeric attack", draft("A", "d", "abc", "1", ""), "attack"},
		{"partially numeric defense", draft("A", "d", "1", "10abc", ""), "defense"},
		{"fractional defense", draft("A", "d", "1", "1.5", ""), "defense"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			svc.SetDraft(tt.draft)

			_, err := svc.Create(tt.draft)
			require.Error(t, err)
			assert.True(t, carderr.IsValidationError(err))

			var vErr *carderr.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)

			assert.Equal(t, 0, svc.Count(), "failed create must not append")
			assert.Equal(t, tt.draft, svc.Draft(), "failed create must keep the draft")
		})
	}
}

func TestCardService_CreateAcceptsSignedAndPaddedNumbers(t *testing.T) {
	svc := newTestService(t)

	card, err := svc.Create(draft("A", "d", " -20 ", "+7", ""))
	require.NoError(t, err)
	assert.Equal(t, -20, card.Attack)
	assert.Equal(t, 7, card.Defense)
}

func TestCardService_Update(t *testing.T) {
	svc := newTestService(t,
		model.Card{ID: 1, Name: "A", Description: "a", ImageURL: "a.png"},
		model.Card{ID: 2, Name: "B", Description: "b", ImageURL: "b.png"},
		model.Card{ID: 3, Name: "C", Description: "c", ImageURL: "c.png"},
	)

	card, err := svc.Update(2, draft("B2", "b2", "100", "200", "new.png"))
	require.NoError(t, err)
	require.NotNil(t, card)

	cards := svc.List("")
	require.Len(t, cards, 3)
	assert.Equal(t, &model.Card{ID: 2, Name: "B2", Description: "b2", Attack: 100, Defense: 200, ImageURL: "new.png"}, cards[1])
	assert.Equal(t, []string{"A", "B2", "C"}, []string{cards[0].Name, cards[1].Name, cards[2].Name})
}

func TestCardService_UpdateEmptyImageKeepsPrior(t *testing.T) {
	svc := newTestService(t, model.Card{ID: 1, Name: "A", Description: "a", ImageURL: "prior.png"})

	card, err := svc.Update(1, draft("A", "a", "1", "1", ""))
	require.NoError(t, err)
	assert.Equal(t, "prior.png", card.ImageURL, "update must not substitute the placeholder")
}

func TestCardService_UpdateEmptyImageKeepsEmptyPrior(t *testing.T) {
	svc := newTestService(t, model.Card{ID: 1, Name: "A", Description: "a", ImageURL: ""})

	card, err := svc.Update(1, draft("A", "a", "1", "1", ""))
	require.NoError(t, err)
	assert.Equal(t, "", card.ImageURL)
}

func TestCardService_UpdateMissingIsNoop(t *testing.T) {
	svc := newTestService(t, model.Card{ID: 1, Name: "A", Description: "a"})
	sub := &recordingSubscriber{}
	svc.Subscribe(sub)

	d := draft("X", "x", "1", "1", "")
	d.EditingID = intPtr(9)
	svc.SetDraft(d)

	card, err := svc.Update(9, d)
	require.NoError(t, err)
	assert.Nil(t, card)
	assert.Equal(t, 1, svc.Count())
	assert.Empty(t, sub.changes)
	assert.True(t, svc.Draft().IsEmpty())
}

func TestCardService_DeleteWhileEditing(t *testing.T) {
	svc := newTestService(t,
		model.Card{ID: 1, Name: "A", Description: "a", Attack: 1, Defense: 1},
		model.Card{ID: 2, Name: "B", Description: "b"},
	)

	loaded, err := svc.LoadForEditByID(1)
	require.NoError(t, err)

	require.True(t, svc.Delete(1))
	assert.Equal(t, loaded, svc.Draft(), "delete must not touch the draft")

	// Submitting the stale draft is a silent no-op
	card, err := svc.Submit(svc.Draft())
	require.NoError(t, err)
	assert.Nil(t, card)
	assert.Equal(t, 1, svc.Count())
}

func TestCardService_DeleteCounts(t *testing.T) {
	svc := newTestService(t, model.Card{ID: 1, Name: "A", Description: "a"})

	assert.False(t, svc.Delete(5))
	assert.Equal(t, 1, svc.Count())

	assert.True(t, svc.Delete(1))
	assert.Equal(t, 0, svc.Count())

	assert.False(t, svc.Delete(1))
}

func TestCardService_LoadForEdit(t *testing.T) {
	card := &model.Card{ID: 4, Name: "A", Description: "a", Attack: 3000, Defense: 2500, ImageURL: "i.png"}
	svc := newTestService(t, *card)

	d := svc.LoadForEdit(card)

	assert.Equal(t, "3000", d.Attack)
	assert.Equal(t, "2500", d.Defense)
	id, ok := d.Editing()
	require.True(t, ok)
	assert.Equal(t, 4, id)
	assert.Equal(t, d, svc.Draft())
}

func TestCardService_LoadForEditByID_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.LoadForEditByID(1)
	assert.True(t, carderr.IsNotFound(err))
}

func TestCardService_SubmitRoutes(t *testing.T) {
	svc := newTestService(t, model.Card{ID: 1, Name: "A", Description: "a", ImageURL: "a.png"})

	created, err := svc.Submit(draft("B", "b", "1", "1", ""))
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)

	d := svc.LoadForEdit(created)
	d.Name = "B edited"
	updated, err := svc.Submit(d)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.ID)
	assert.Equal(t, "B edited", updated.Name)
	assert.Equal(t, 2, svc.Count())
}

func TestCardService_ClearDraft(t *testing.T) {
	svc := newTestService(t, model.Card{ID: 1, Name: "A", Description: "a"})
	_, err := svc.LoadForEditByID(1)
	require.NoError(t, err)

	svc.ClearDraft()

	assert.True(t, svc.Draft().IsEmpty())
	assert.Equal(t, 1, svc.Count())
}

func TestCardService_DraftSnapshotIsIsolated(t *testing.T) {
	svc := newTestService(t, model.Card{ID: 1, Name: "A", Description: "a"})
	_, err := svc.LoadForEditByID(1)
	require.NoError(t, err)

	snap := svc.Draft()
	*snap.EditingID = 42

	id, _ := svc.Draft().Editing()
	assert.Equal(t, 1, id)
}

func TestCardService_ListQuery(t *testing.T) {
	svc := newTestService(t,
		model.Card{ID: 1, Name: "Dragón Blanco", Description: "Un poderoso dragón de luz"},
		model.Card{ID: 2, Name: "Mori Jin", Description: "El Rey Mono"},
	)

	assert.Len(t, svc.List(""), 2)

	got := svc.List("dragon")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	got = svc.List("rey mono")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	assert.Empty(t, svc.List("nada"))
}

func TestCardService_NotifiesSubscribers(t *testing.T) {
	svc := newTestService(t)
	sub := &recordingSubscriber{}
	svc.Subscribe(sub)

	card, err := svc.Create(draft("A", "a", "1", "1", ""))
	require.NoError(t, err)
	_, err = svc.Update(card.ID, draft("B", "b", "1", "1", ""))
	require.NoError(t, err)
	svc.Delete(card.ID)
	svc.Delete(card.ID) // no-op, no notification

	assert.Equal(t, []CardChange{
		{Op: CardCreated, ID: 1},
		{Op: CardUpdated, ID: 1},
		{Op: CardDeleted, ID: 1},
	}, sub.changes)
}

func TestCardService_SetFallbackImage(t *testing.T) {
	svc := newTestService(t)
	svc.SetFallbackImage("")

	card, err := svc.Create(draft("A", "a", "1", "1", ""))
	require.NoError(t, err)
	assert.Equal(t, "", card.ImageURL)
	assert.Equal(t, "", svc.FallbackImage())
}
