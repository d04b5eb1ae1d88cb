package api

import (
	"fmt"
	"html"
	"net/http"

	"github.com/sirxnine/cartas/internal/model"
)

const defaultFaviconColor = "#3b82f6"

// GenerateFaviconSVG draws the deck letter on a rounded square in the deck color.
func GenerateFaviconSVG(deck model.Deck) string {
	bg := deck.Color
	if bg == "" {
		bg = defaultFaviconColor
	}
	letter := deck.Letter
	if letter == "" {
		letter = "C"
	}

	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32"><rect width="32" height="32" rx="6" fill="%s"/>`+
			`<text x="50%%" y="50%%" dominant-baseline="central" text-anchor="middle" fill="white" font-family="system-ui, -apple-system, sans-serif" font-weight="600" font-size="20">%s</text></svg>`,
		html.EscapeString(bg), html.EscapeString(letter),
	)
}

// GetFavicon serves the active deck's favicon.
func (h *Handler) GetFavicon(w http.ResponseWriter, r *http.Request) {
	svg := GenerateFaviconSVG(h.decks.Deck())

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(svg))
}
