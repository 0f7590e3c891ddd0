// Package scraper defines the domain models and interfaces for catalog discovery and stream resolution.
package scraper

import (
	"errors"
	"fmt"
)

// ErrNoResults reports that a search yielded nothing to resolve.
var ErrNoResults = errors.New("no results found")

// ConfigError reports an invalid option bag: an unknown source mode, or a
// required option missing for the selected mode. It is returned before any
// network request is made.
type ConfigError struct {
	// Source is the requested catalog source mode.
	Source string
	// Option is the missing option; empty when the source itself is unknown.
	Option string
}

func (e *ConfigError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("unknown source %q", e.Source)
	}
	return fmt.Sprintf("source %q requires option %q", e.Source, e.Option)
}
