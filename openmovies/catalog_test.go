package openmovies

import (
	"errors"
	"testing"

	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewExtractor(t *testing.T) {
	Convey("Given an options bag", t, func() {
		Convey("When no source is set", func() {
			ext, err := newExtractor(nil)

			Convey("Then the demo feed is selected", func() {
				So(err, ShouldBeNil)

				feed, ok := ext.(*jsonFeed)
				So(ok, ShouldBeTrue)
				So(feed.url, ShouldEqual, DefaultFeedURL)
			})
		})

		Convey("When the source is spelled with a different case", func() {
			ext, err := newExtractor(&scraper.Options{
				Source:       "CSS",
				URL:          "https://example.com",
				ItemSelector: "div.item",
			})

			Convey("Then it is still recognized", func() {
				So(err, ShouldBeNil)

				selector, ok := ext.(*cssSelector)
				So(ok, ShouldBeTrue)
				So(selector.hrefAttr, ShouldEqual, "href")
			})
		})

		Convey("When the html-list source has no url", func() {
			_, err := newExtractor(&scraper.Options{Source: SourceHTMLList})

			Convey("Then it fails with a ConfigError naming the option", func() {
				var configErr *scraper.ConfigError
				So(errors.As(err, &configErr), ShouldBeTrue)
				So(configErr.Source, ShouldEqual, SourceHTMLList)
				So(configErr.Option, ShouldEqual, "url")
			})
		})

		Convey("When the css source misses the item selector", func() {
			_, err := newExtractor(&scraper.Options{Source: SourceCSS, URL: "https://example.com"})

			Convey("Then it fails with a ConfigError naming the option", func() {
				var configErr *scraper.ConfigError
				So(errors.As(err, &configErr), ShouldBeTrue)
				So(configErr.Option, ShouldEqual, "item_selector")
			})
		})

		Convey("When the source is unknown", func() {
			_, err := newExtractor(&scraper.Options{Source: "rss"})

			Convey("Then it fails with a ConfigError naming the source", func() {
				var configErr *scraper.ConfigError
				So(errors.As(err, &configErr), ShouldBeTrue)
				So(configErr.Source, ShouldEqual, "rss")
				So(configErr.Option, ShouldBeEmpty)
			})
		})
	})
}
