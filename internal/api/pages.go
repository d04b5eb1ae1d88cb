package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	carderr "github.com/sirxnine/cartas/internal/errors"
	"github.com/sirxnine/cartas/internal/model"
)

// Index renders the collection page: the form bound to the draft and the card list.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderIndex(w, r, http.StatusOK, "")
}

// SubmitForm creates a card from the form, or updates the card the draft is editing.
// On a validation error the page is re-rendered with the typed values kept.
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderIndex(w, r, http.StatusBadRequest, "Formulario inválido")
		return
	}

	draft := model.Draft{
		Name:        r.PostForm.Get("name"),
		Description: r.PostForm.Get("description"),
		Attack:      r.PostForm.Get("attack"),
		Defense:     r.PostForm.Get("defense"),
		ImageURL:    r.PostForm.Get("image_url"),
		EditingID:   h.cards.Draft().EditingID,
	}
	h.cards.SetDraft(draft)

	if _, err := h.cards.Submit(draft); err != nil {
		var validation *carderr.ValidationError
		if errors.As(err, &validation) {
			h.renderIndex(w, r, http.StatusBadRequest, validation.Error())
			return
		}
		log.Printf("Error: submit card: %v", err)
		h.renderIndex(w, r, http.StatusInternalServerError, "No se pudo guardar la carta")
		return
	}

	redirectHome(w, r)
}

// EditForm loads a card into the draft.
func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	cardID, ok := formPathID(w, r)
	if !ok {
		return
	}

	if _, err := h.cards.LoadForEditByID(cardID); err != nil {
		if carderr.IsNotFound(err) {
			h.renderIndex(w, r, http.StatusNotFound, err.Error())
			return
		}
		h.renderIndex(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	redirectHome(w, r)
}

// DeleteForm deletes a card. Deleting a missing card is a silent no-op.
func (h *Handler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	cardID, ok := formPathID(w, r)
	if !ok {
		return
	}

	h.cards.Delete(cardID)
	redirectHome(w, r)
}

// CancelForm clears the draft.
func (h *Handler) CancelForm(w http.ResponseWriter, r *http.Request) {
	h.cards.ClearDraft()
	redirectHome(w, r)
}

func (h *Handler) renderIndex(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	deck := h.decks.Deck()
	query := r.URL.Query().Get("q")
	draft := h.cards.Draft()
	editingID, editing := draft.Editing()

	view := pageView{
		Title:       deck.Title,
		Subtitle:    deck.Subtitle,
		BrokenImage: deck.BrokenImage,
		Query:       query,
		Total:       h.cards.Count(),
		Cards:       newCardViews(h.cards.List(query)),
		Draft:       draft,
		EditingID:   editingID,
		Editing:     editing,
		Error:       errMsg,
	}

	RenderPage(w, r, status, pageLayout(view), mainContent(view))
}

// redirectHome sends the browser back to the page after a form post.
// HTMX requests get an HX-Redirect instead of a 303.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	if IsHTMXRequest(r) {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func formPathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("id")
	cardID, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, "invalid card id: "+raw, http.StatusBadRequest)
		return 0, false
	}
	return cardID, true
}
