package station

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects the listing order. Unrecognized values behave like
// SortNone and leave the filter-stage order unchanged.
type SortMode string

const (
	SortNone      SortMode = ""
	SortNameAsc   SortMode = "name_asc"
	SortDieselAsc SortMode = "diesel_asc"
	SortAdblueAsc SortMode = "adblue_asc"
)

// Select applies query filter, always-open filter and sort in that
// fixed order and returns a fresh slice. The input list is never
// mutated, so the caller can re-invoke on every control change against
// the same authoritative list.
func Select(all []Station, query string, onlyOpen bool, mode SortMode) []Station {
	list := make([]Station, len(all))
	copy(list, all)

	if q := Normalize(query); q != "" {
		kept := list[:0]
		for _, s := range list {
			if strings.Contains(Normalize(s.Name), q) || strings.Contains(Normalize(s.Adresse), q) {
				kept = append(kept, s)
			}
		}
		list = kept
	}

	if onlyOpen {
		kept := list[:0]
		for _, s := range list {
			if IsAlwaysOpen(s.Oeffnungszeiten) {
				kept = append(kept, s)
			}
		}
		list = kept
	}

	switch mode {
	case SortNameAsc:
		// German collation: umlauts sort with their base letter, not by
		// byte value.
		c := collate.New(language.German)
		sort.SliceStable(list, func(i, j int) bool {
			return c.CompareString(list[i].Name, list[j].Name) < 0
		})
	case SortDieselAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return MinimumOf(list[i].Preise.Diesel) < MinimumOf(list[j].Preise.Diesel)
		})
	case SortAdblueAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return MinimumOf(list[i].Preise.Adblue) < MinimumOf(list[j].Preise.Adblue)
		})
	}

	return list
}
