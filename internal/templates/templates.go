// Package templates renders the station listing. Components are built
// on the templ runtime; every dynamic value goes through
// templ.EscapeString before it reaches the page.
package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

// Page carries the fields every page needs.
type Page struct {
	Title string
	Theme string // "dark" or "light"
	Toast string // toast already showing when the page opens
}

// StationsData is everything the listing page renders.
type StationsData struct {
	Page
	Query     string
	Sort      string
	OnlyOpen  bool
	Status    string // "Stationen: n / m" or error status
	LoadError string // persistent error banner, empty when loading succeeded
	Cards     []Card
}

// Card is the view model for one station card.
type Card struct {
	Name       string
	Adresse    string
	AlwaysOpen bool
	Hours      string // raw hours text, shown when not always-open
	BestDiesel string // formatted minimum or placeholder
	AS24       bool
	Eurowag    bool
	Gutmann    bool
	Diesel     PriceRows
	Adblue     PriceRows
	Distance   string // "" unless a location fix is cached
	Dest       string // routing destination, may be empty
	CopyText   string // clipboard payload, may be empty
}

// PriceRows is one fuel's per-provider breakdown, pre-formatted.
type PriceRows struct {
	AS24    string
	Eurowag string
	Gutmann string
	Best    string
}

// buf accumulates HTML and the first write error.
type buf struct {
	w   io.Writer
	err error
}

func (b *buf) raw(s string) {
	if b.err == nil {
		_, b.err = io.WriteString(b.w, s)
	}
}

func (b *buf) rawf(format string, args ...any) {
	if b.err == nil {
		_, b.err = fmt.Fprintf(b.w, format, args...)
	}
}

// esc writes an escaped dynamic value.
func (b *buf) esc(s string) {
	b.raw(templ.EscapeString(s))
}

// StationsPage renders the full listing page.
func StationsPage(data StationsData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		writeHead(b, data.Page)
		writeControls(b, data)

		b.raw(`<div id="status" class="status">`)
		b.esc(data.Status)
		b.raw(`</div>`)

		if data.LoadError != "" {
			b.raw(`<div id="error" class="error">`)
			b.esc(data.LoadError)
			b.raw(`</div>`)
		}

		b.raw(`<div id="stations">`)
		if data.LoadError == "" {
			if len(data.Cards) == 0 {
				b.raw(`<div class="error">Keine Treffer.</div>`)
			}
			for _, c := range data.Cards {
				writeCard(b, c)
			}
		}
		b.raw(`</div>`)

		writeFoot(b, data.Page)
		return b.err
	})
}

func writeHead(b *buf, p Page) {
	b.raw(`<!DOCTYPE html><html lang="de"><head><meta charset="utf-8">` +
		`<meta name="viewport" content="width=device-width, initial-scale=1">` +
		`<title>`)
	b.esc(p.Title)
	b.raw(`</title><link rel="stylesheet" href="/static/app.css"></head>`)
	if p.Theme == "light" {
		b.raw(`<body class="light">`)
	} else {
		b.raw(`<body>`)
	}
	b.raw(`<header><h1>`)
	b.esc(p.Title)
	b.raw(`</h1><form method="post" action="/theme"><button id="themeToggle" class="btn secondary" type="submit">`)
	if p.Theme == "light" {
		b.raw(`☀️ Tag`)
	} else {
		b.raw(`🌙 Nacht`)
	}
	b.raw(`</button></form></header>`)
}

func writeControls(b *buf, data StationsData) {
	b.raw(`<form id="controls" method="get" action="/">` +
		`<input id="q" name="q" type="search" placeholder="Name oder Adresse…" value="`)
	b.esc(data.Query)
	b.raw(`"><select id="sort" name="sort">`)
	writeSortOption(b, "", "Sortierung", data.Sort)
	writeSortOption(b, "name_asc", "Name A–Z", data.Sort)
	writeSortOption(b, "diesel_asc", "Diesel aufsteigend", data.Sort)
	writeSortOption(b, "adblue_asc", "AdBlue aufsteigend", data.Sort)
	b.raw(`</select><label><input id="onlyOpen" name="open" type="checkbox" value="1"`)
	if data.OnlyOpen {
		b.raw(` checked`)
	}
	b.raw(`> nur 24/7</label><noscript><button type="submit" class="btn">Anwenden</button></noscript></form>`)
}

func writeSortOption(b *buf, value, label, selected string) {
	b.raw(`<option value="`)
	b.esc(value)
	b.raw(`"`)
	if value == selected {
		b.raw(` selected`)
	}
	b.raw(`>`)
	b.esc(label)
	b.raw(`</option>`)
}

func writeCard(b *buf, c Card) {
	b.raw(`<div class="card"><div class="card-head"><div class="card-title">`)
	b.esc(orDash(c.Name))
	b.raw(`</div><div class="card-sub">`)
	b.esc(orDash(c.Adresse))
	b.raw(`</div></div><div class="card-body"><div class="row">`)

	if c.AlwaysOpen {
		b.raw(`<span class="tag">24/7</span>`)
	} else {
		b.raw(`<span class="tag">⏱ `)
		b.esc(orDash(c.Hours))
		b.raw(`</span>`)
	}
	b.raw(`<span class="tag">Best Diesel: `)
	b.esc(c.BestDiesel)
	b.raw(` €</span>`)
	if c.Distance != "" {
		b.raw(`<span class="tag">📍 `)
		b.esc(c.Distance)
		b.raw(`</span>`)
	}
	b.raw(`</div><div class="row">`)
	writeBadge(b, "AS24", c.AS24)
	writeBadge(b, "Eurowag", c.Eurowag)
	writeBadge(b, "Gutmann", c.Gutmann)
	b.raw(`</div>`)

	writePriceBox(b, "Diesel", c.Diesel)
	writePriceBox(b, "AdBlue", c.Adblue)

	b.raw(`<div class="btnrow"><a class="btn route-btn" target="_blank" rel="noopener noreferrer" href="/route?dest=`)
	b.raw(templ.EscapeString(url.QueryEscape(c.Dest)))
	b.raw(`">🧭 Route</a><form class="copy-form" method="post" action="/copy"><input type="hidden" name="text" value="`)
	b.esc(c.CopyText)
	b.raw(`"><button class="btn secondary copy-btn" type="submit">📋 Name + Adresse kopieren</button></form></div></div></div>`)
}

func writeBadge(b *buf, label string, ok bool) {
	if ok {
		b.raw(`<span class="pill">✅ `)
	} else {
		b.raw(`<span class="pill off">— `)
	}
	b.esc(label)
	b.raw(`</span>`)
}

func writePriceBox(b *buf, title string, rows PriceRows) {
	b.raw(`<div class="pricebox"><h4>`)
	b.esc(title)
	b.raw(`</h4><div class="pricegrid">`)
	writePriceRow(b, "AS24", rows.AS24)
	writePriceRow(b, "Eurowag", rows.Eurowag)
	writePriceRow(b, "Gutmann", rows.Gutmann)
	writePriceRow(b, "Best", rows.Best)
	b.raw(`</div></div>`)
}

func writePriceRow(b *buf, label, value string) {
	b.raw(`<div class="kv"><span>`)
	b.esc(label)
	b.raw(`</span><b>`)
	b.esc(value)
	b.raw(` €</b></div>`)
}

func writeFoot(b *buf, p Page) {
	b.raw(`<div id="toast" class="toast`)
	if p.Toast != "" {
		b.raw(` show`)
	}
	b.raw(`">`)
	b.esc(p.Toast)
	b.raw(`</div><script src="/static/app.js"></script></body></html>`)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
