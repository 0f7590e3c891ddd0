package openmovies

import (
	"encoding/json"

	"github.com/CalebBrendel/mov-cli-openmovies/constant"
	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
	"github.com/samber/lo"
)

// loadHeaders resolves the header options of a bag. The mapping form wins;
// the JSON string form is decoded when present and silently dropped when it
// does not parse into a flat string mapping.
func loadHeaders(options *scraper.Options) map[string]string {
	if options == nil {
		return nil
	}

	if len(options.Headers) > 0 {
		return options.Headers
	}

	if options.HeadersJSON == "" {
		return nil
	}

	var headers map[string]string
	if err := json.Unmarshal([]byte(options.HeadersJSON), &headers); err != nil {
		return nil
	}

	return headers
}

// mergeHeaders builds the header set attached to resolved streams: the
// default User-Agent overlaid with whatever the options carry.
func mergeHeaders(options *scraper.Options) map[string]string {
	return lo.Assign(map[string]string{"User-Agent": constant.UserAgent}, loadHeaders(options))
}
