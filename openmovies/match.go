package openmovies

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// Normalize collapses every whitespace run to a single space and trims the
// ends. Case is kept so normalized titles stay presentable.
func Normalize(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// Matches reports whether every whitespace-separated token of the query
// occurs somewhere in the title, case-insensitively. Token order does not
// matter and an empty query matches everything.
func Matches(query, title string) bool {
	haystack := strings.ToLower(Normalize(title))

	for _, token := range strings.Fields(strings.ToLower(Normalize(query))) {
		if !strings.Contains(haystack, token) {
			return false
		}
	}

	return true
}
