// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "openmovies"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// Repository is the GitHub repository slug queried for release updates.
	Repository = "CalebBrendel/mov-cli-openmovies"

	// UserAgent is the default HTTP User-Agent string sent with every catalog request.
	UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
)

// Build metadata, overridden at link time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
