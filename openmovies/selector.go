package openmovies

import (
	"github.com/CalebBrendel/mov-cli-openmovies/network"
	"github.com/PuerkitoBio/goquery"
)

// cssSelector extracts catalog items from arbitrary markup. Every node hit by
// itemSelector becomes a candidate; nodes without a usable link are skipped.
type cssSelector struct {
	url           string
	itemSelector  string
	titleSelector string
	hrefAttr      string
	headers       map[string]string
}

func (c *cssSelector) extract() ([]catalogItem, error) {
	document, err := network.FetchHTML(c.url, c.headers)
	if err != nil {
		return nil, err
	}

	var items []catalogItem
	document.Find(c.itemSelector).Each(func(_ int, node *goquery.Selection) {
		href := c.hrefOf(node)
		if href == "" {
			return
		}

		items = append(items, catalogItem{
			title: c.titleOf(node, href),
			url:   Absolutize(c.url, href),
		})
	})

	return items, nil
}

// hrefOf finds the link of an item node: the configured attribute first, the
// plain href attribute next, the first linked descendant anchor last.
func (c *cssSelector) hrefOf(node *goquery.Selection) string {
	if href := node.AttrOr(c.hrefAttr, ""); href != "" {
		return href
	}

	if href := node.AttrOr("href", ""); href != "" {
		return href
	}

	return node.Find("a[href]").First().AttrOr("href", "")
}

// titleOf derives the display title of an item node: the title selector's
// text when it yields anything, the node's own text otherwise, and the raw
// href as the final fallback so an item is never nameless.
func (c *cssSelector) titleOf(node *goquery.Selection, href string) string {
	if c.titleSelector != "" {
		if title := Normalize(node.Find(c.titleSelector).First().Text()); title != "" {
			return title
		}
	}

	if title := Normalize(node.Text()); title != "" {
		return title
	}

	return href
}
