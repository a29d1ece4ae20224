package loader

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tankview/internal/station"
)

// Store holds the authoritative station list for the session. The list
// is only ever replaced wholesale (startup load or periodic reload);
// between replacements it is read-only, so readers need no copies of
// the records themselves.
type Store struct {
	mu       sync.RWMutex
	stations []station.Station
	loadErr  error
	loaded   bool

	readyOnce sync.Once
	ready     chan struct{}
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{ready: make(chan struct{})}
}

// SetStations replaces the full list and clears any previous load
// error.
func (s *Store) SetStations(stations []station.Station) {
	s.mu.Lock()
	s.stations = stations
	s.loadErr = nil
	s.loaded = true
	s.mu.Unlock()
	s.readyOnce.Do(func() { close(s.ready) })
}

// SetError records a failed load attempt. An earlier successful list
// is kept; the error only replaces an empty store's state.
func (s *Store) SetError(err error) {
	s.mu.Lock()
	if !s.loaded {
		s.loadErr = err
	}
	s.mu.Unlock()
	s.readyOnce.Do(func() { close(s.ready) })
}

// Snapshot returns the current list and the load error, if any.
func (s *Store) Snapshot() ([]station.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stations, s.loadErr
}

// Ready is closed once the first load attempt has finished, success or
// not. The server shows a loading page until then.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Run performs the initial load and, when refresh > 0, keeps reloading
// on a ticker until the context is cancelled. Each reload replaces the
// list wholesale; a failed reload keeps the previous list.
func Run(ctx context.Context, l *Loader, store *Store, refresh time.Duration, logger *slog.Logger) {
	load := func() {
		stations, err := l.Load(ctx)
		if err != nil {
			logger.Error("station data load failed", "error", err)
			store.SetError(err)
			return
		}
		store.SetStations(stations)
	}

	load()
	if refresh <= 0 {
		return
	}

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			load()
		case <-ctx.Done():
			return
		}
	}
}
