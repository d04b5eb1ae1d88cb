package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	carderr "github.com/sirxnine/cartas/internal/errors"
	"github.com/sirxnine/cartas/internal/model"
)

// CardInput is the body sent to create or update a card.
// Stats are sent as typed so the server does the validation; empty stats are
// left out so the server reports them as required.
type CardInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Attack      string `json:"attack,omitempty"`
	Defense     string `json:"defense,omitempty"`
	ImageURL    string `json:"image_url"`
}

// Client talks to a running cartas server over its JSON API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the server at baseURL, e.g. "http://localhost:3000".
// A nil httpClient means http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// BaseURL returns the server address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListCards returns the collection, filtered by query when non-empty.
func (c *Client) ListCards(ctx context.Context, query string) ([]model.Card, error) {
	path := "/api/v1/cards"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}

	var resp struct {
		Cards []model.Card `json:"cards"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Cards, nil
}

// GetCard fetches one card.
func (c *Client) GetCard(ctx context.Context, id int) (*model.Card, error) {
	var card model.Card
	if err := c.do(ctx, http.MethodGet, cardPath(id), nil, &card); err != nil {
		return nil, notFoundAs(err, id)
	}
	return &card, nil
}

// CreateCard creates a card and returns it with its assigned id.
func (c *Client) CreateCard(ctx context.Context, in CardInput) (*model.Card, error) {
	var card model.Card
	if err := c.do(ctx, http.MethodPost, "/api/v1/cards", encodeInput(in), &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateCard replaces a card's fields. An empty ImageURL keeps the current image.
func (c *Client) UpdateCard(ctx context.Context, id int, in CardInput) (*model.Card, error) {
	var card model.Card
	if err := c.do(ctx, http.MethodPut, cardPath(id), encodeInput(in), &card); err != nil {
		return nil, notFoundAs(err, id)
	}
	return &card, nil
}

// DeleteCard deletes a card.
func (c *Client) DeleteCard(ctx context.Context, id int) error {
	return notFoundAs(c.do(ctx, http.MethodDelete, cardPath(id), nil, nil), id)
}

// GetDeck returns the server's active deck settings.
func (c *Client) GetDeck(ctx context.Context) (*DeckInfo, error) {
	var deck DeckInfo
	if err := c.do(ctx, http.MethodGet, "/api/v1/deck", nil, &deck); err != nil {
		return nil, err
	}
	return &deck, nil
}

// DeckInfo mirrors the server's deck response.
type DeckInfo struct {
	Name          string `json:"name"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle,omitempty"`
	FallbackImage string `json:"fallback_image"`
	BrokenImage   string `json:"broken_image"`
}

// APIError is a non-2xx response the server explained.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d %s", e.Status, http.StatusText(e.Status))
	}
	return e.Message
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("is the server running at %s? %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError turns an error response into a typed error where possible.
func decodeError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return &carderr.ValidationError{Message: payload.Error}
	case http.StatusNotFound:
		return &carderr.NotFoundError{Resource: "card", ID: ""}
	}
	return &APIError{Status: resp.StatusCode, Message: payload.Error}
}

func notFoundAs(err error, id int) error {
	if carderr.IsNotFound(err) {
		return carderr.CardNotFound(id)
	}
	return err
}

func cardPath(id int) string {
	return "/api/v1/cards/" + strconv.Itoa(id)
}

func encodeInput(in CardInput) []byte {
	data, _ := json.Marshal(in)
	return data
}
