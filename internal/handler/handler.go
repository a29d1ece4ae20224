package handler

import (
	"log/slog"

	"tankview/internal/clipboard"
	"tankview/internal/loader"
	"tankview/internal/location"
	"tankview/internal/notify"
	"tankview/internal/prefs"
)

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	store  *loader.Store
	loc    *location.Service
	clip   *clipboard.Service
	toasts *notify.Center
	prefs  *prefs.Store
	logger *slog.Logger
}

// New creates a Handler.
func New(store *loader.Store, loc *location.Service, clip *clipboard.Service, toasts *notify.Center, prefs *prefs.Store, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		loc:    loc,
		clip:   clip,
		toasts: toasts,
		prefs:  prefs,
		logger: logger,
	}
}
