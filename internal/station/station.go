// Package station holds the station data model and the pure functions
// that turn raw records into display values and filtered/sorted views.
package station

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Provider identifiers as they appear in the data file.
const (
	ProviderAS24    = "as24"
	ProviderEurowag = "eurowag"
	ProviderGutmann = "gutmann"
)

// Station is one record from the data file. Records are read-only after
// load; all derived values are recomputed per request.
type Station struct {
	Name            string    `json:"name"`
	Adresse         string    `json:"adresse"`
	Coords          *Coords   `json:"coords"`
	Oeffnungszeiten string    `json:"oeffnungszeiten"`
	Preise          Preise    `json:"preise"`
	Akzeptanz       Akzeptanz `json:"akzeptanz"`
}

// Coords is an optional coordinate pair. Either field may be missing in
// the source data, so both are pointers.
type Coords struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// Preise holds the per-provider price tables for both fuels.
type Preise struct {
	Diesel PriceMap `json:"diesel"`
	Adblue PriceMap `json:"adblue"`
}

// PriceMap maps a provider identifier to its price.
type PriceMap map[string]Price

// Price is a single price field. The data file is hand-maintained and
// a value may arrive as a number, a numeric string, an empty string or
// null. Anything non-numeric is treated as absent and renders as the
// placeholder, never as zero.
type Price struct {
	Value float64
	Valid bool
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*p = Price{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*p = Price{}
			return nil
		}
		s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
		if s == "" {
			*p = Price{}
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*p = Price{}
			return nil
		}
		*p = Price{Value: v, Valid: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*p = Price{}
		return nil
	}
	*p = Price{Value: v, Valid: true}
	return nil
}

// Akzeptanz carries the raw per-provider acceptance flags. The gutmann
// provider has two source fields: gutmann_karte is the current name,
// gutmann_lieferant the historic one. Both are honored (OR-combined)
// by Acceptance; their semantics are not assumed interchangeable.
type Akzeptanz struct {
	AS24Karte        Flag `json:"as24_karte"`
	EurowagKarte     Flag `json:"eurowag_karte"`
	GutmannKarte     Flag `json:"gutmann_karte"`
	GutmannLieferant Flag `json:"gutmann_lieferant"`
}

// Flag is a truthy acceptance flag: true booleans, non-zero numbers and
// the strings "true"/"1"/"ja" all count as set.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, string(data) == "null", string(data) == "false", string(data) == "0":
		*f = false
	case string(data) == "true":
		*f = true
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = false
			return nil
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "1", "ja":
			*f = true
		default:
			*f = false
		}
	default:
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			*f = false
			return nil
		}
		*f = v != 0
	}
	return nil
}

// AcceptanceFlags is the normalized per-provider acceptance summary.
type AcceptanceFlags struct {
	AS24    bool
	Eurowag bool
	Gutmann bool
}

// Acceptance normalizes the raw flags into one boolean per provider.
func (s *Station) Acceptance() AcceptanceFlags {
	a := s.Akzeptanz
	return AcceptanceFlags{
		AS24:    bool(a.AS24Karte),
		Eurowag: bool(a.EurowagKarte),
		Gutmann: bool(a.GutmannKarte) || bool(a.GutmannLieferant),
	}
}

// Destination returns the routing target for the station: "lat,lon"
// when both coordinates are present, otherwise the address, otherwise
// an empty string.
func (s *Station) Destination() string {
	if c := s.Coords; c != nil && c.Lat != nil && c.Lon != nil {
		return strconv.FormatFloat(*c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(*c.Lon, 'f', -1, 64)
	}
	return s.Adresse
}

// CopyText returns the text the copy control puts on the clipboard:
// "name — address" when both are present, else whichever exists.
func (s *Station) CopyText() string {
	switch {
	case s.Name != "" && s.Adresse != "":
		return s.Name + " — " + s.Adresse
	case s.Adresse != "":
		return s.Adresse
	default:
		return s.Name
	}
}
