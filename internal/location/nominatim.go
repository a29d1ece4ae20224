package location

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/muesli/gominatim"
	"github.com/patrickmn/go-cache"
)

// maxFixAge is how long a provider-side result may be reused, the
// equivalent of the platform geolocation maximumAge option.
const maxFixAge = 30 * time.Second

// NominatimProvider geocodes a fixed address (the depot or home base
// the viewer runs at) via Nominatim. Results are reused for up to 30
// seconds so rapid successive lookups don't hit the geocoder twice.
type NominatimProvider struct {
	address string
	cache   *cache.Cache
}

// NewNominatimProvider creates a provider for the given address.
// Returns nil when the address is empty; the Service then reports
// ErrUnavailable, the capability-absent case.
func NewNominatimProvider(server, address string) *NominatimProvider {
	if address == "" {
		return nil
	}
	gominatim.SetServer(server)
	return &NominatimProvider{
		address: address,
		cache:   cache.New(maxFixAge, 2*maxFixAge),
	}
}

// Locate geocodes the configured address.
func (p *NominatimProvider) Locate(ctx context.Context) (Fix, error) {
	if cached, ok := p.cache.Get(p.address); ok {
		return cached.(Fix), nil
	}

	type result struct {
		fix Fix
		err error
	}
	ch := make(chan result, 1)
	go func() {
		fix, err := p.geocode()
		ch <- result{fix, err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			return Fix{}, res.err
		}
		p.cache.Set(p.address, res.fix, cache.DefaultExpiration)
		return res.fix, nil
	case <-ctx.Done():
		return Fix{}, ctx.Err()
	}
}

func (p *NominatimProvider) geocode() (Fix, error) {
	qry := gominatim.SearchQuery{Q: p.address}
	results, err := qry.Get()
	if err != nil {
		return Fix{}, fmt.Errorf("geocoding %q: %w", p.address, err)
	}
	if len(results) == 0 {
		return Fix{}, fmt.Errorf("no results for %q", p.address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Fix{}, fmt.Errorf("parse lat: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Fix{}, fmt.Errorf("parse lon: %w", err)
	}
	return Fix{Lat: lat, Lon: lon}, nil
}
