package station

import (
	"math"
	"strconv"
	"strings"
)

// Placeholder is rendered for absent or non-numeric values.
const Placeholder = "-"

// NoPrice is the sentinel MinimumOf returns when a price map has no
// numeric entries. It sorts after every real price; callers must check
// for it before display.
var NoPrice = math.Inf(1)

// Normalize lowercases and trims a field value for case- and
// whitespace-insensitive matching.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// alwaysOpenPatterns are explicit full-day ranges, matched after
// whitespace stripping.
var alwaysOpenPatterns = []string{"00.00-24.00", "00:00-24:00", "00.00-00.00"}

// IsAlwaysOpen reports whether an opening-hours text denotes a 24/7
// station. The substring match on "24" is intentionally loose: it
// catches "24h", "24/7" and friends, at the cost of false positives on
// unrelated text containing "24".
func IsAlwaysOpen(hours string) bool {
	t := strings.Join(strings.Fields(Normalize(hours)), "")
	if strings.Contains(t, "24") {
		return true
	}
	for _, p := range alwaysOpenPatterns {
		if t == p {
			return true
		}
	}
	return false
}

// FormatPrice renders a price with exactly three decimal digits and a
// comma as decimal separator, independent of the host locale. Absent
// prices render as the placeholder.
func FormatPrice(p Price) string {
	if !p.Valid {
		return Placeholder
	}
	return strings.Replace(strconv.FormatFloat(p.Value, 'f', 3, 64), ".", ",", 1)
}

// FormatMinimum renders a MinimumOf result, mapping the NoPrice
// sentinel to the placeholder.
func FormatMinimum(min float64) string {
	if math.IsInf(min, 1) {
		return Placeholder
	}
	return FormatPrice(Price{Value: min, Valid: true})
}

// MinimumOf returns the smallest numeric value in a price map, or the
// NoPrice sentinel when there is none.
func MinimumOf(prices PriceMap) float64 {
	min := NoPrice
	for _, p := range prices {
		if p.Valid && p.Value < min {
			min = p.Value
		}
	}
	return min
}
