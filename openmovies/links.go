package openmovies

import (
	"strings"

	"github.com/CalebBrendel/mov-cli-openmovies/network"
	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
)

// streamSuffixes are the link endings the html-list mode keeps.
var streamSuffixes = []string{".mp4", ".m3u8", ".webm"}

// htmlList extracts every anchor of a page that points at a stream file.
// Anchors with empty text or a non-stream href are skipped; relative links
// are resolved against the page URL.
type htmlList struct {
	url     string
	headers map[string]string
}

func (l *htmlList) extract() ([]catalogItem, error) {
	document, err := network.FetchHTML(l.url, l.headers)
	if err != nil {
		return nil, err
	}

	var items []catalogItem
	document.Find("a[href]").Each(func(_ int, anchor *goquery.Selection) {
		href := anchor.AttrOr("href", "")
		title := Normalize(anchor.Text())

		if title == "" || href == "" || !hasStreamSuffix(href) {
			return
		}

		items = append(items, catalogItem{title: title, url: Absolutize(l.url, href)})
	})

	return items, nil
}

func hasStreamSuffix(href string) bool {
	href = strings.ToLower(href)

	return lo.SomeBy(streamSuffixes, func(suffix string) bool {
		return strings.HasSuffix(href, suffix)
	})
}
