// Package scraper defines the domain models and interfaces for catalog discovery and stream resolution.
package scraper

// Options is the per-call option bag a host passes to Search and Scrape.
// It is consumed once per invocation; scrapers keep no state between calls.
// A nil *Options is equivalent to the zero value, which selects the
// scraper's defaults.
type Options struct {
	// Source selects the catalog extraction mode of the scraper.
	Source string `json:"source,omitempty"`
	// URL of the catalog to scrape.
	URL string `json:"url,omitempty"`
	// ItemSelector is the CSS selector matching one catalog item per node.
	ItemSelector string `json:"item_selector,omitempty"`
	// TitleSelector is the CSS selector for the title inside an item node.
	TitleSelector string `json:"title_selector,omitempty"`
	// HrefAttr is the attribute read for the item link.
	HrefAttr string `json:"href_attr,omitempty"`
	// Headers are extra request headers sent with catalog fetches and
	// forwarded to the player on resolved streams.
	Headers map[string]string `json:"headers,omitempty"`
	// HeadersJSON carries the same headers as a JSON object string, for
	// hosts that pass options as flat strings. Headers wins when both are
	// set; invalid JSON is silently ignored.
	HeadersJSON string `json:"headers_json,omitempty"`
}
