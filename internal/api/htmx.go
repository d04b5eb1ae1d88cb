package api

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// HTMXRequestHeader is set by HTMX on requests it initiates.
const HTMXRequestHeader = "HX-Request"

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(HTMXRequestHeader), "true")
}

// RenderPage writes fragment alone for HTMX requests, and fragment wrapped in
// layout otherwise. Output is buffered so a render error can still produce a
// clean 500.
func RenderPage(w http.ResponseWriter, r *http.Request, status int, layout, fragment templ.Component) {
	target := fragment
	if !IsHTMXRequest(r) {
		target = layout
	}

	var buf bytes.Buffer
	ctx := templ.WithChildren(r.Context(), fragment)
	if err := target.Render(ctx, &buf); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
