package openmovies

import (
	"strings"

	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
)

// Source modes accepted by the scraper. The mode decides how the catalog page
// is fetched and which piece of it becomes a search result.
const (
	SourceBlenderJSON = "blender-json"
	SourceHTMLList    = "html-list"
	SourceCSS         = "css"
)

// DefaultFeedURL is the demo catalog used when the blender-json mode is given
// no url of its own.
const DefaultFeedURL = "https://gist.githubusercontent.com/jsturgis/3b19447b304616f18657/raw"

// defaultHrefAttr is the attribute the css mode reads stream links from unless
// told otherwise.
const defaultHrefAttr = "href"

// catalogItem is one extracted catalog entry, already normalized and absolutized.
type catalogItem struct {
	title string
	url   string
}

// extractor turns a configured catalog into items. Each source mode is a
// separate implementation; the choice is made once, before any network I/O.
type extractor interface {
	extract() ([]catalogItem, error)
}

// newExtractor validates the option bag and builds the extractor for the
// selected source mode. Configuration problems surface here as ConfigError,
// so a misconfigured call never reaches the network.
func newExtractor(options *scraper.Options) (extractor, error) {
	if options == nil {
		options = &scraper.Options{}
	}

	headers := loadHeaders(options)

	source := strings.ToLower(options.Source)
	if source == "" {
		source = SourceBlenderJSON
	}

	switch source {
	case SourceBlenderJSON:
		url := options.URL
		if url == "" {
			url = DefaultFeedURL
		}

		return &jsonFeed{url: url, headers: headers}, nil
	case SourceHTMLList:
		if options.URL == "" {
			return nil, &scraper.ConfigError{Source: source, Option: "url"}
		}

		return &htmlList{url: options.URL, headers: headers}, nil
	case SourceCSS:
		if options.URL == "" {
			return nil, &scraper.ConfigError{Source: source, Option: "url"}
		}

		if options.ItemSelector == "" {
			return nil, &scraper.ConfigError{Source: source, Option: "item_selector"}
		}

		hrefAttr := options.HrefAttr
		if hrefAttr == "" {
			hrefAttr = defaultHrefAttr
		}

		return &cssSelector{
			url:           options.URL,
			itemSelector:  options.ItemSelector,
			titleSelector: options.TitleSelector,
			hrefAttr:      hrefAttr,
			headers:       headers,
		}, nil
	default:
		return nil, &scraper.ConfigError{Source: source}
	}
}
