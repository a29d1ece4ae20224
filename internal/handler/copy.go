package handler

import (
	"net/http"
	"strings"
)

// Copy puts the posted text on the host clipboard and confirms with a
// toast. The per-card copy forms post here; the redirect back to the
// listing renders the toast even without the page script, which
// intercepts the submit and keeps the page in place instead.
func (h *Handler) Copy(w http.ResponseWriter, r *http.Request) {
	text := r.FormValue("text")
	if strings.TrimSpace(text) == "" {
		h.toasts.Publish("Nichts zu kopieren")
		http.Redirect(w, r, localPathOr(r.Referer(), "/"), http.StatusSeeOther)
		return
	}

	if err := h.clip.Copy(text); err != nil {
		h.logger.Error("clipboard copy failed", "error", err)
		h.toasts.Publish("Kopieren fehlgeschlagen")
		http.Redirect(w, r, localPathOr(r.Referer(), "/"), http.StatusSeeOther)
		return
	}

	h.toasts.Publish("Kopiert ✅")
	http.Redirect(w, r, localPathOr(r.Referer(), "/"), http.StatusSeeOther)
}
