//go:build dev

package api

import (
	"net/http"
)

// StaticHandler serves assets straight from disk so edits show up without a rebuild.
// Build with -tags dev and run from the repository root.
func (h *Handler) StaticHandler() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.Dir("internal/api/static")))
}
