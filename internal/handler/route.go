package handler

import (
	"net/http"

	"tankview/internal/routeurl"
)

// Route resolves a navigation deep link for the requested destination
// and redirects to it. The location lookup is best-effort: any failure
// silently falls back to an origin-less route, never an error page.
func (h *Handler) Route(w http.ResponseWriter, r *http.Request) {
	dest := r.URL.Query().Get("dest")
	if dest == "" {
		h.toasts.Publish("Kein Ziel")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.toasts.Publish("GPS wird abgefragt…")

	origin := ""
	if fix, err := h.loc.Current(r.Context()); err == nil {
		origin = fix.String()
	}

	platform := routeurl.Detect(r.UserAgent(), r.Header.Get("Sec-CH-UA-Mobile") == "?1")
	target := routeurl.Build(dest, origin, platform)

	// The target is an external maps application; leak neither referrer
	// nor opener.
	w.Header().Set("Referrer-Policy", "no-referrer")
	http.Redirect(w, r, target, http.StatusFound)
}
