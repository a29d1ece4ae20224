package handler

import (
	"fmt"
	"net/http"
	"strings"
)

// SSEToasts streams toast notifications to the page via Server-Sent
// Events. The page script listens for "toast" events and shows or
// hides the toast element.
func (h *Handler) SSEToasts(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	events, cancel := h.toasts.Subscribe()
	defer cancel()

	// Send the current state immediately so a reconnecting page shows
	// a toast that is still pending dismissal.
	sendToast(w, flusher, h.toasts.Current())

	for {
		select {
		case ev := <-events:
			sendToast(w, flusher, ev.Text)
		case <-r.Context().Done():
			return
		}
	}
}

// sendToast writes one SSE event. A newline in the text would break
// the SSE framing, so collapse to a single line.
func sendToast(w http.ResponseWriter, flusher http.Flusher, text string) {
	text = strings.ReplaceAll(text, "\n", " ")
	fmt.Fprintf(w, "event: toast\ndata: %s\n\n", text)
	flusher.Flush()
}
