// Package location resolves the viewer's position with a session-wide
// cache-first policy: once a fix is obtained it is reused for the rest
// of the session and no further provider request is issued.
package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrUnavailable means no position can be determined: no provider is
// configured, the lookup failed, or it timed out. Callers treat this
// as expected and fall back to origin-less routing, never as an error
// shown to the user.
var ErrUnavailable = errors.New("Standort nicht verfügbar")

// requestTimeout bounds a single provider lookup.
const requestTimeout = 10 * time.Second

// Fix is a resolved position.
type Fix struct {
	Lat float64
	Lon float64
}

// String renders the fix as an unformatted "lat,lon" pair, the form
// route origins take.
func (f Fix) String() string {
	return fmt.Sprintf("%g,%g", f.Lat, f.Lon)
}

// Provider performs one position lookup.
type Provider interface {
	Locate(ctx context.Context) (Fix, error)
}

// Service wraps a Provider behind the session cache. Concurrent
// callers share a single in-flight lookup; only a successful fix is
// cached. The mutex guards the stored state only and is never held
// across the provider call, so Cached stays responsive while a lookup
// is in flight.
type Service struct {
	provider Provider
	logger   *slog.Logger

	mu       sync.Mutex
	fix      *Fix
	inflight chan struct{} // non-nil while a lookup runs, closed when it finishes
}

// NewService creates a Service. provider may be nil, in which case
// every call fails with ErrUnavailable.
func NewService(provider Provider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Current returns the session fix, performing at most one concurrent
// provider lookup. The lookup gets a 10 second budget; on failure the
// service stays empty so a later call may try again. Callers arriving
// while a lookup is in flight wait for that lookup instead of starting
// their own.
func (s *Service) Current(ctx context.Context) (Fix, error) {
	s.mu.Lock()
	if s.fix != nil {
		fix := *s.fix
		s.mu.Unlock()
		return fix, nil
	}
	if s.provider == nil {
		s.mu.Unlock()
		return Fix{}, ErrUnavailable
	}
	if done := s.inflight; done != nil {
		s.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return Fix{}, fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
		}
		return s.settled()
	}
	done := make(chan struct{})
	s.inflight = done
	s.mu.Unlock()

	lctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	fix, err := s.provider.Locate(lctx)

	s.mu.Lock()
	if err == nil {
		s.fix = &fix
	}
	s.inflight = nil
	s.mu.Unlock()
	close(done)

	if err != nil {
		s.logger.Warn("location lookup failed", "error", err)
		return Fix{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return fix, nil
}

// settled reports the outcome of a lookup another caller performed: a
// stored fix means it succeeded, an empty store means it failed.
func (s *Service) settled() (Fix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fix != nil {
		return *s.fix, nil
	}
	return Fix{}, ErrUnavailable
}

// Cached returns the session fix without triggering a lookup. Used for
// best-effort display such as the per-card distance tag.
func (s *Service) Cached() (Fix, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fix == nil {
		return Fix{}, false
	}
	return *s.fix, true
}
