package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/tkrajina/gpxgo/gpx"

	"tankview/internal/location"
	"tankview/internal/station"
	"tankview/internal/templates"
)

// Stations serves the listing page. Every request recomputes the
// filtered/sorted view from the authoritative full list, so control
// changes never accumulate state.
func (h *Handler) Stations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	mode := station.SortMode(r.URL.Query().Get("sort"))
	onlyOpen := r.URL.Query().Get("open") == "1"

	all, loadErr := h.store.Snapshot()
	list := station.Select(all, query, onlyOpen, mode)

	data := templates.StationsData{
		Page: templates.Page{
			Title: "Tankstellen",
			Theme: h.prefs.Theme(r.Context()),
			Toast: h.toasts.Current(),
		},
		Query:    query,
		Sort:     string(mode),
		OnlyOpen: onlyOpen,
	}

	if loadErr != nil {
		data.Status = "Fehler"
		data.LoadError = fmt.Sprintf("FEHLER: JSON nicht geladen (%v)", loadErr)
	} else {
		data.Status = fmt.Sprintf("Stationen: %d / %d", len(list), len(all))
		// Best-effort distance tag: only when a fix is already cached,
		// never triggering a lookup from the render path.
		var origin *location.Fix
		if fix, ok := h.loc.Cached(); ok {
			origin = &fix
		}
		data.Cards = make([]templates.Card, len(list))
		for i, s := range list {
			data.Cards[i] = buildCard(s, origin)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.StationsPage(data).Render(r.Context(), w); err != nil {
		h.logger.Error("rendering stations page", "error", err)
	}
}

// buildCard derives the per-card view values. Everything here is
// recomputed per request and never cached.
func buildCard(s station.Station, origin *location.Fix) templates.Card {
	akz := s.Acceptance()
	c := templates.Card{
		Name:       s.Name,
		Adresse:    s.Adresse,
		AlwaysOpen: station.IsAlwaysOpen(s.Oeffnungszeiten),
		Hours:      s.Oeffnungszeiten,
		BestDiesel: station.FormatMinimum(station.MinimumOf(s.Preise.Diesel)),
		AS24:       akz.AS24,
		Eurowag:    akz.Eurowag,
		Gutmann:    akz.Gutmann,
		Diesel:     priceRows(s.Preise.Diesel),
		Adblue:     priceRows(s.Preise.Adblue),
		Dest:       s.Destination(),
		CopyText:   s.CopyText(),
	}
	if origin != nil && s.Coords != nil && s.Coords.Lat != nil && s.Coords.Lon != nil {
		meters := gpx.Distance2D(origin.Lat, origin.Lon, *s.Coords.Lat, *s.Coords.Lon, true)
		c.Distance = formatDistance(meters)
	}
	return c
}

func priceRows(m station.PriceMap) templates.PriceRows {
	return templates.PriceRows{
		AS24:    station.FormatPrice(m[station.ProviderAS24]),
		Eurowag: station.FormatPrice(m[station.ProviderEurowag]),
		Gutmann: station.FormatPrice(m[station.ProviderGutmann]),
		Best:    station.FormatMinimum(station.MinimumOf(m)),
	}
}

// formatDistance renders meters as "850 m" or "12,4 km" with the
// German decimal comma.
func formatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return strings.Replace(fmt.Sprintf("%.1f km", meters/1000), ".", ",", 1)
}
