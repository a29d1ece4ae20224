// Package loader fetches the station data file, validates its shape
// and owns the in-memory station list.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"tankview/internal/station"
)

// DataLoadError is fatal to the listing: network failure, non-success
// HTTP status or a malformed data file. It is surfaced as a persistent
// error banner and never retried automatically (the optional periodic
// reload is a fresh attempt, not a retry).
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// Loader reads the data file from an HTTP URL or a local path.
type Loader struct {
	source string
	client *http.Client
	logger *slog.Logger
}

// New creates a Loader for the given source. Sources starting with
// http:// or https:// are fetched over the network, everything else is
// read from the filesystem.
func New(source string, logger *slog.Logger) *Loader {
	return &Loader{
		source: source,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

// Load fetches and parses the data file. The top-level shape must be
// an object with a "stations" array; anything else is a DataLoadError.
func (l *Loader) Load(ctx context.Context) ([]station.Station, error) {
	raw, err := l.read(ctx)
	if err != nil {
		return nil, &DataLoadError{Source: l.source, Err: err}
	}

	var doc struct {
		Stations json.RawMessage `json:"stations"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &DataLoadError{Source: l.source, Err: fmt.Errorf("parse JSON: %w", err)}
	}
	trimmed := strings.TrimSpace(string(doc.Stations))
	if trimmed == "" || !strings.HasPrefix(trimmed, "[") {
		return nil, &DataLoadError{Source: l.source, Err: fmt.Errorf("stations[] fehlt")}
	}

	var stations []station.Station
	if err := json.Unmarshal(doc.Stations, &stations); err != nil {
		return nil, &DataLoadError{Source: l.source, Err: fmt.Errorf("stations[] fehlt: %w", err)}
	}

	l.logger.Info("station data loaded", "source", l.source, "stations", len(stations))
	return stations, nil
}

func (l *Loader) read(ctx context.Context) ([]byte, error) {
	if !strings.HasPrefix(l.source, "http://") && !strings.HasPrefix(l.source, "https://") {
		data, err := os.ReadFile(l.source)
		if err != nil {
			return nil, err
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", l.source, nil)
	if err != nil {
		return nil, err
	}
	// Always fetch the freshest copy.
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}
