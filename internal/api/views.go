package api

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/sirxnine/cartas/internal/model"
	"github.com/sirxnine/cartas/internal/util"
)

// pageView is everything the collection page renders.
type pageView struct {
	Title       string
	Subtitle    string
	BrokenImage string
	Query       string
	Total       int
	Cards       []cardView
	Draft       model.Draft
	EditingID   int  // zero when creating
	Editing     bool // draft is editing an existing card
	Error       string
}

type cardView struct {
	*model.Card
	Anchor string
}

func newCardViews(cards []*model.Card) []cardView {
	views := make([]cardView, len(cards))
	for i, c := range cards {
		views[i] = cardView{Card: c, Anchor: cardAnchor(c)}
	}
	return views
}

// cardAnchor builds a stable DOM id such as "card-1-dragon-blanco".
func cardAnchor(c *model.Card) string {
	anchor := "card-" + strconv.Itoa(c.ID)
	if slug := util.Slug(c.Name); slug != "" {
		anchor += "-" + slug
	}
	return anchor
}

// htmlWriter writes markup and keeps the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) url(s string) {
	h.text(string(templ.URL(s)))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err == nil {
		h.err = c.Render(ctx, h.w)
	}
}

// pageLayout renders the full HTML document around the children in ctx.
func pageLayout(view pageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!doctype html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>`)
		h.text(view.Title)
		h.raw(`</title>
<link rel="icon" href="/favicon.svg" type="image/svg+xml">
<link rel="stylesheet" href="/static/app.css">
<script src="https://unpkg.com/htmx.org@2.0.4" defer></script>
<script src="/static/app.js" defer></script>
</head>
<body>
<header class="page-header">
<h1>`)
		h.text(view.Title)
		h.raw("</h1>\n")
		if view.Subtitle != "" {
			h.raw(`<p class="subtitle">`)
			h.text(view.Subtitle)
			h.raw("</p>\n")
		}
		h.raw("</header>\n")
		h.render(ctx, templ.GetChildren(ctx))
		h.raw("\n</body>\n</html>\n")
		return h.err
	})
}

// mainContent renders the <main> element, the unit HTMX swaps.
func mainContent(view pageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<main id="main">` + "\n")
		h.render(ctx, cardForm(view))
		h.render(ctx, cardList(view))
		h.raw("</main>\n")
		return h.err
	})
}

func cardForm(view pageView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		heading, submit := "Crear Carta", "Crear"
		if view.Editing {
			heading, submit = "Editar Carta", "Actualizar"
		}

		h.raw(`<section class="form-panel">` + "\n<h2>")
		h.text(heading)
		h.raw("</h2>\n")
		if view.Error != "" {
			h.raw(`<p class="form-error" role="alert">`)
			h.text(view.Error)
			h.raw("</p>\n")
		}
		h.raw(`<form method="post" action="/cards" id="card-form">` + "\n")
		h.raw(`<input type="text" name="name" placeholder="Nombre de la carta" value="`)
		h.text(view.Draft.Name)
		h.raw(`" required>` + "\n")
		h.raw(`<textarea name="description" placeholder="Descripción" rows="3" required>`)
		h.text(view.Draft.Description)
		h.raw("</textarea>\n")
		h.raw(`<input type="url" name="image_url" placeholder="URL de la imagen (opcional)" value="`)
		h.text(view.Draft.ImageURL)
		h.raw(`">` + "\n")
		h.raw(`<div class="stats">` + "\n")
		h.raw(`<input type="number" name="attack" placeholder="Ataque" value="`)
		h.text(view.Draft.Attack)
		h.raw(`" required>` + "\n")
		h.raw(`<input type="number" name="defense" placeholder="Defensa" value="`)
		h.text(view.Draft.Defense)
		h.raw(`" required>` + "\n</div>\n")
		h.raw(`<div class="actions">` + "\n")
		h.raw(`<button type="submit" class="primary">`)
		h.text(submit)
		h.raw("</button>\n")
		if view.Editing {
			h.raw(`<button type="submit" formaction="/draft/cancel" formnovalidate class="secondary">Cancelar</button>` + "\n")
		}
		h.raw("</div>\n</form>\n</section>\n")
		return h.err
	})
}

func cardList(view pageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="list-panel">` + "\n")
		h.raw(`<form method="get" action="/" class="search">` + "\n")
		h.raw(`<input type="search" name="q" value="`)
		h.text(view.Query)
		h.raw(`" placeholder="Buscar cartas"` + "\n")
		h.raw(` hx-get="/" hx-trigger="input changed delay:300ms" hx-target="#main" hx-swap="outerHTML">` + "\n</form>\n")
		if view.Query != "" {
			h.raw(`<p class="count">`)
			h.text(strconv.Itoa(len(view.Cards)) + " de " + strconv.Itoa(view.Total) + " cartas")
			h.raw("</p>\n")
		}

		h.raw(`<div class="card-grid">` + "\n")
		for _, card := range view.Cards {
			h.render(ctx, cardItem(card, card.ID == view.EditingID, view.BrokenImage))
		}
		h.raw("</div>\n")

		if len(view.Cards) == 0 {
			h.raw(`<p class="empty">`)
			if view.Query != "" {
				h.text(`Ninguna carta coincide con "` + view.Query + `"`)
			} else {
				h.text("No hay cartas creadas")
			}
			h.raw("</p>\n")
		}
		h.raw("</section>\n")
		return h.err
	})
}

// cardItem renders one card. A broken image swaps to brokenImage in the
// browser; the stored URL is left alone.
func cardItem(card cardView, editing bool, brokenImage string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		id := strconv.Itoa(card.ID)

		h.raw(`<article class="card`)
		if editing {
			h.raw(" editing")
		}
		h.raw(`" id="`)
		h.text(card.Anchor)
		h.raw(`">` + "\n")
		h.raw(`<img src="`)
		h.url(card.ImageURL)
		h.raw(`" alt="`)
		h.text(card.Name)
		h.raw(`" data-fallback="`)
		h.url(brokenImage)
		h.raw(`"` + "\n" + ` onerror="this.onerror=null;this.src=this.dataset.fallback">` + "\n")
		h.raw(`<span class="card-id">ID: ` + id + "</span>\n")
		h.raw(`<div class="card-body">` + "\n<h3>")
		h.text(card.Name)
		h.raw("</h3>\n<p>")
		h.text(card.Description)
		h.raw("</p>\n")
		h.raw(`<dl class="card-stats">` + "\n")
		h.raw(`<div><dt>Ataque</dt><dd class="attack">` + strconv.Itoa(card.Attack) + "</dd></div>\n")
		h.raw(`<div><dt>Defensa</dt><dd class="defense">` + strconv.Itoa(card.Defense) + "</dd></div>\n")
		h.raw("</dl>\n")
		h.raw(`<div class="actions">` + "\n")
		h.raw(`<form method="post" action="/cards/` + id + `/edit"><button type="submit" class="edit">Editar</button></form>` + "\n")
		h.raw(`<form method="post" action="/cards/` + id + `/delete"><button type="submit" class="delete">Eliminar</button></form>` + "\n")
		h.raw("</div>\n</div>\n</article>\n")
		return h.err
	})
}
