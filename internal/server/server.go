package server

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"tankview/internal/config"
	"tankview/internal/handler"
	"tankview/web"
)

// Server is the HTTP server for Tankview.
type Server struct {
	mux    *http.ServeMux
	cfg    *config.Config
	logger *slog.Logger
	ready  <-chan struct{} // closed when the first data load has finished
}

// New creates a new Server with all routes registered.
func New(cfg *config.Config, h *handler.Handler, ready <-chan struct{}, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	// Static files served from the embedded FS.
	staticFS, _ := fs.Sub(web.StaticFiles, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	mux.HandleFunc("GET /{$}", h.Stations)
	mux.HandleFunc("GET /route", h.Route)
	mux.HandleFunc("POST /copy", h.Copy)
	mux.HandleFunc("POST /theme", h.ToggleTheme)
	mux.HandleFunc("GET /sse/toasts", h.SSEToasts)

	return &Server{mux: mux, cfg: cfg, logger: logger, ready: ready}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.logger.Info("server starting", "addr", addr)
	return http.ListenAndServe(addr, withMiddleware(s.mux, s.logger, s.ready))
}
