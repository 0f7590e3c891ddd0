package openmovies

import (
	"regexp"
	"strings"
)

var schemeHost = regexp.MustCompile(`^https?://[^/]+`)

// Absolutize resolves a possibly-relative href against the URL of the page it
// was found on. Resolution is simpler than RFC 3986: no ../ collapsing, no
// query or fragment handling. Absolute hrefs pass through untouched,
// protocol-relative ones get https, root-relative ones are grafted onto the
// base origin, and anything else replaces the last path segment of the base.
func Absolutize(base, href string) string {
	switch {
	case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
		return href
	case strings.HasPrefix(href, "//"):
		return "https:" + href
	case strings.HasPrefix(href, "/"):
		if origin := schemeHost.FindString(base); origin != "" {
			return origin + href
		}

		return strings.TrimRight(base, "/") + href
	case strings.HasSuffix(base, "/"):
		return base + href
	default:
		if idx := strings.LastIndex(base, "/"); idx != -1 {
			return base[:idx+1] + href
		}

		return base + "/" + href
	}
}
