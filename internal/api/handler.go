package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/service"
)

// Handler contains all HTTP handlers, for both the HTML pages and the JSON API.
//
// Design: single-user, single-session. Every request works on the one
// collection and the one draft owned by the CardService; all browser tabs
// share them.
type Handler struct {
	cards *service.CardService
	decks *service.DeckService
}

// NewHandler creates a new handler with the given dependencies.
func NewHandler(cards *service.CardService, decks *service.DeckService) *Handler {
	return &Handler{
		cards: cards,
		decks: decks,
	}
}

// RegisterRoutes sets up all routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// HTML pages
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("POST /cards", h.SubmitForm)
	mux.HandleFunc("POST /cards/{id}/edit", h.EditForm)
	mux.HandleFunc("POST /cards/{id}/delete", h.DeleteForm)
	mux.HandleFunc("POST /draft/cancel", h.CancelForm)
	mux.HandleFunc("GET /favicon.svg", h.GetFavicon)

	// Deck
	mux.HandleFunc("GET /api/v1/deck", h.GetDeck)

	// Card routes
	mux.HandleFunc("GET /api/v1/cards", h.ListCards)
	mux.HandleFunc("POST /api/v1/cards", h.CreateCard)
	mux.HandleFunc("GET /api/v1/cards/{id}", h.GetCard)
	mux.HandleFunc("PUT /api/v1/cards/{id}", h.UpdateCard)
	mux.HandleFunc("DELETE /api/v1/cards/{id}", h.DeleteCard)

	// Draft routes
	mux.HandleFunc("GET /api/v1/draft", h.GetDraft)
	mux.HandleFunc("PUT /api/v1/draft/{id}", h.LoadDraft)
	mux.HandleFunc("DELETE /api/v1/draft", h.ClearDraft)

	// Static files
	mux.Handle("GET /static/", h.StaticHandler())
}

// CardRequest is the JSON body for creating or updating a card.
// Stats may be sent as numbers or numeric strings.
type CardRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Attack      json.Number `json:"attack"`
	Defense     json.Number `json:"defense"`
	ImageURL    string      `json:"image_url"`
}

func (req CardRequest) draft() model.Draft {
	return model.Draft{
		Name:        req.Name,
		Description: req.Description,
		Attack:      req.Attack.String(),
		Defense:     req.Defense.String(),
		ImageURL:    req.ImageURL,
	}
}

// DeckResponse is the JSON response for the active deck.
type DeckResponse struct {
	Name          string `json:"name"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle,omitempty"`
	FallbackImage string `json:"fallback_image"`
	BrokenImage   string `json:"broken_image"`
}

// --- Deck Handlers ---

// GetDeck returns the active deck's display settings.
func (h *Handler) GetDeck(w http.ResponseWriter, r *http.Request) {
	deck := h.decks.Deck()
	JSON(w, http.StatusOK, DeckResponse{
		Name:          deck.Name,
		Title:         deck.Title,
		Subtitle:      deck.Subtitle,
		FallbackImage: h.cards.FallbackImage(),
		BrokenImage:   deck.BrokenImage,
	})
}

// --- Card Handlers ---

// ListCards returns all cards in collection order, optionally filtered by ?q=.
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards := h.cards.List(r.URL.Query().Get("q"))
	JSON(w, http.StatusOK, map[string][]*model.Card{"cards": cards})
}

// GetCard returns a single card.
func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathID(w, r)
	if !ok {
		return
	}

	card, err := h.cards.Get(cardID)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, card)
}

// CreateCard creates a new card.
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "Invalid JSON: "+err.Error())
		return
	}

	card, err := h.cards.Create(req.draft())
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusCreated, card)
}

// UpdateCard replaces a card's fields. An empty image_url keeps the current image.
func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "Invalid JSON: "+err.Error())
		return
	}

	card, err := h.cards.Update(cardID, req.draft())
	if err != nil {
		Error(w, err)
		return
	}
	if card == nil {
		NotFound(w, "card", strconv.Itoa(cardID))
		return
	}
	JSON(w, http.StatusOK, card)
}

// DeleteCard deletes a card.
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathID(w, r)
	if !ok {
		return
	}

	if !h.cards.Delete(cardID) {
		NotFound(w, "card", strconv.Itoa(cardID))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Draft Handlers ---

// GetDraft returns the current draft buffer.
func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.cards.Draft())
}

// LoadDraft loads a card into the draft for editing.
func (h *Handler) LoadDraft(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathID(w, r)
	if !ok {
		return
	}

	draft, err := h.cards.LoadForEditByID(cardID)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, draft)
}

// ClearDraft resets the draft buffer.
func (h *Handler) ClearDraft(w http.ResponseWriter, r *http.Request) {
	h.cards.ClearDraft()
	w.WriteHeader(http.StatusNoContent)
}

// NotFound writes a 404 error for the given resource.
func NotFound(w http.ResponseWriter, resource, id string) {
	JSON(w, http.StatusNotFound, map[string]string{"error": resource + " not found: " + id})
}

// pathID parses the {id} path value, writing a 400 if it isn't an integer.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("id")
	n, err := strconv.Atoi(raw)
	if err != nil {
		BadRequest(w, "invalid card id: "+raw)
		return 0, false
	}
	return n, true
}
