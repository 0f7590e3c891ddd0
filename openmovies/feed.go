package openmovies

import (
	"github.com/CalebBrendel/mov-cli-openmovies/network"
)

// feedEntry mirrors one entry of the demo catalog feed.
type feedEntry struct {
	Title   string   `json:"title"`
	Sources []string `json:"sources"`
}

// jsonFeed extracts a JSON array of title/sources entries. Entries missing a
// title or carrying no sources are skipped; the first source wins.
type jsonFeed struct {
	url     string
	headers map[string]string
}

func (f *jsonFeed) extract() ([]catalogItem, error) {
	var entries []feedEntry
	if err := network.FetchJSON(f.url, f.headers, &entries); err != nil {
		return nil, err
	}

	var items []catalogItem
	for _, entry := range entries {
		if entry.Title == "" || len(entry.Sources) == 0 {
			continue
		}

		items = append(items, catalogItem{title: entry.Title, url: entry.Sources[0]})
	}

	return items, nil
}
