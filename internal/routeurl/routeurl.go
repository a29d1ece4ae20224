// Package routeurl builds navigation deep links for external map
// applications. Building a URL is a pure function of destination,
// origin and the platform variant; the variant is resolved once per
// request from User-Agent signals.
package routeurl

import (
	"net/url"
	"strings"
)

// Platform is the closed set of link targets.
type Platform int

const (
	// PlatformOther gets the Google web map.
	PlatformOther Platform = iota
	// PlatformIOS gets the Apple Maps app deep link.
	PlatformIOS
	// PlatformAndroid gets the generic geo: query.
	PlatformAndroid
	// PlatformMacDesktop gets the Apple web map.
	PlatformMacDesktop
)

func (p Platform) String() string {
	switch p {
	case PlatformIOS:
		return "ios"
	case PlatformAndroid:
		return "android"
	case PlatformMacDesktop:
		return "mac"
	default:
		return "other"
	}
}

// Detect resolves the platform variant from the User-Agent and the
// touch-capability hint. A Macintosh UA with touch support is an iPad
// masquerading as a desktop, so it counts as iOS.
func Detect(userAgent string, touch bool) Platform {
	switch {
	case strings.Contains(userAgent, "iPad"),
		strings.Contains(userAgent, "iPhone"),
		strings.Contains(userAgent, "iPod"):
		return PlatformIOS
	case strings.Contains(userAgent, "Macintosh") && touch:
		return PlatformIOS
	case strings.Contains(strings.ToLower(userAgent), "android"):
		return PlatformAndroid
	case strings.Contains(userAgent, "Macintosh"):
		return PlatformMacDesktop
	default:
		return PlatformOther
	}
}

// Build produces the navigation URL for the given platform. origin may
// be empty; destination is required by the caller. All components are
// percent-encoded.
func Build(dest, origin string, platform Platform) string {
	d := escape(dest)
	o := escape(origin)

	switch platform {
	case PlatformIOS:
		u := "maps://?daddr=" + d
		if origin != "" {
			u += "&saddr=" + o
		}
		return u
	case PlatformAndroid:
		u := "geo:0,0?q=" + d
		if origin != "" {
			u += "&origin=" + o
		}
		return u
	case PlatformMacDesktop:
		u := "https://maps.apple.com/?daddr=" + d
		if origin != "" {
			u += "&saddr=" + o
		}
		return u
	default:
		u := "https://www.google.com/maps/dir/?api=1"
		if origin != "" {
			u += "&origin=" + o
		}
		return u + "&destination=" + d
	}
}

// escape percent-encodes a URL component. Spaces become %20, not the
// form-encoded +, which deep-link handlers pass through literally.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
