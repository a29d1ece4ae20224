package handler

import (
	"net/http"
	"net/url"

	"tankview/internal/prefs"
)

// ToggleTheme flips the persisted theme and returns to the listing,
// keeping the current filter state when the Referer carries it.
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	next := prefs.ThemeLight
	if h.prefs.Theme(r.Context()) == prefs.ThemeLight {
		next = prefs.ThemeDark
	}
	if err := h.prefs.SetTheme(r.Context(), next); err != nil {
		h.logger.Error("persisting theme preference", "error", err)
	}

	http.Redirect(w, r, localPathOr(r.Referer(), "/"), http.StatusSeeOther)
}

// localPathOr reduces a referer to a local path with query, falling
// back when it is absent or unparsable.
func localPathOr(referer, fallback string) string {
	if referer == "" {
		return fallback
	}
	u, err := url.Parse(referer)
	if err != nil || u.Path == "" {
		return fallback
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
