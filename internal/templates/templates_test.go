package templates

import (
	"context"
	"strings"
	"testing"
)

func render(t *testing.T, data StationsData) string {
	t.Helper()
	var sb strings.Builder
	if err := StationsPage(data).Render(context.Background(), &sb); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return sb.String()
}

func TestStationsPage_EmptyState(t *testing.T) {
	html := render(t, StationsData{
		Page:   Page{Title: "Tankstellen"},
		Status: "Stationen: 0 / 0",
	})

	if !strings.Contains(html, "Keine Treffer.") {
		t.Error("missing empty-state message")
	}
	if !strings.Contains(html, "Stationen: 0 / 0") {
		t.Error("missing status line")
	}
	if strings.Contains(html, `class="card"`) {
		t.Error("empty listing rendered a card")
	}
}

func TestStationsPage_LoadErrorHidesCards(t *testing.T) {
	html := render(t, StationsData{
		Page:      Page{Title: "Tankstellen"},
		Status:    "Fehler",
		LoadError: "FEHLER: JSON nicht geladen (404)",
		Cards:     []Card{{Name: "Shell A"}},
	})

	if !strings.Contains(html, "FEHLER: JSON nicht geladen (404)") {
		t.Error("missing error banner")
	}
	if strings.Contains(html, "Shell A") {
		t.Error("cards rendered despite load error")
	}
	if strings.Contains(html, "Keine Treffer.") {
		t.Error("empty-state message rendered despite load error")
	}
}

func TestStationsPage_CardContent(t *testing.T) {
	html := render(t, StationsData{
		Page:   Page{Title: "Tankstellen"},
		Status: "Stationen: 1 / 1",
		Cards: []Card{{
			Name:       "Shell A",
			Adresse:    "Hauptstr. 1",
			AlwaysOpen: true,
			BestDiesel: "1,459",
			AS24:       true,
			Diesel:     PriceRows{AS24: "1,459", Eurowag: "-", Gutmann: "-", Best: "1,459"},
			Adblue:     PriceRows{AS24: "-", Eurowag: "-", Gutmann: "-", Best: "-"},
			Distance:   "2,3 km",
			Dest:       "48.137,11.575",
			CopyText:   "Shell A — Hauptstr. 1",
		}},
	})

	for _, want := range []string{
		"Shell A",
		"Hauptstr. 1",
		`<span class="tag">24/7</span>`,
		"Best Diesel: 1,459 €",
		"📍 2,3 km",
		`<span class="pill">✅ AS24</span>`,
		`<span class="pill off">— Eurowag</span>`,
		`href="/route?dest=48.137%2C11.575"`,
		`<form class="copy-form" method="post" action="/copy">`,
		`<input type="hidden" name="text" value="Shell A — Hauptstr. 1">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestStationsPage_MissingFieldsShowPlaceholder(t *testing.T) {
	html := render(t, StationsData{
		Page:   Page{Title: "Tankstellen"},
		Status: "Stationen: 1 / 1",
		Cards:  []Card{{BestDiesel: "-"}},
	})

	if !strings.Contains(html, `<div class="card-title">-</div>`) {
		t.Error("empty name not rendered as placeholder")
	}
	if !strings.Contains(html, `⏱ -`) {
		t.Error("empty hours not rendered as placeholder")
	}
}

func TestStationsPage_EscapesUserData(t *testing.T) {
	html := render(t, StationsData{
		Page:   Page{Title: "Tankstellen"},
		Query:  `"><script>alert(1)</script>`,
		Status: "Stationen: 1 / 1",
		Cards:  []Card{{Name: `<b>Bold & Co</b>`}},
	})

	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("query value not escaped")
	}
	if strings.Contains(html, "<b>Bold & Co</b>") {
		t.Error("station name not escaped")
	}
	if !strings.Contains(html, "&lt;b&gt;Bold &amp; Co&lt;/b&gt;") {
		t.Error("escaped station name missing")
	}
}

func TestStationsPage_ThemeAndToggleLabel(t *testing.T) {
	dark := render(t, StationsData{Page: Page{Title: "Tankstellen", Theme: "dark"}})
	if strings.Contains(dark, `<body class="light">`) {
		t.Error("dark theme rendered light body")
	}
	if !strings.Contains(dark, "🌙 Nacht") {
		t.Error("dark theme should offer the night label")
	}

	light := render(t, StationsData{Page: Page{Title: "Tankstellen", Theme: "light"}})
	if !strings.Contains(light, `<body class="light">`) {
		t.Error("light theme missing body class")
	}
	if !strings.Contains(light, "☀️ Tag") {
		t.Error("light theme should offer the day label")
	}
}

func TestStationsPage_ControlsReflectState(t *testing.T) {
	html := render(t, StationsData{
		Page:     Page{Title: "Tankstellen"},
		Query:    "Shell",
		Sort:     "diesel_asc",
		OnlyOpen: true,
		Status:   "Stationen: 1 / 2",
	})

	if !strings.Contains(html, `value="Shell"`) {
		t.Error("query value not preserved in search input")
	}
	if !strings.Contains(html, `<option value="diesel_asc" selected>`) {
		t.Error("sort selection not preserved")
	}
	if !strings.Contains(html, `value="1" checked>`) {
		t.Error("open filter checkbox not checked")
	}
}

func TestStationsPage_ToastVisibility(t *testing.T) {
	withToast := render(t, StationsData{Page: Page{Title: "Tankstellen", Toast: "Kopiert ✅"}})
	if !strings.Contains(withToast, `<div id="toast" class="toast show">Kopiert ✅</div>`) {
		t.Error("active toast not rendered visible")
	}

	without := render(t, StationsData{Page: Page{Title: "Tankstellen"}})
	if !strings.Contains(without, `<div id="toast" class="toast"></div>`) {
		t.Error("idle toast should render hidden and empty")
	}
}
