package scraper

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSearchResult(t *testing.T) {
	Convey("SearchResult", t, func() {
		r := &SearchResult{Title: "Big Buck Bunny", URL: "https://example.com/bbb.mp4"}

		Convey("String", func() {
			So(r.String(), ShouldEqual, "Big Buck Bunny")
		})
	})
}

func TestMedia(t *testing.T) {
	Convey("Media", t, func() {
		src := &Source{URL: "https://example.com/bbb.mp4", Headers: map[string]string{"User-Agent": "x"}}
		single := &Single{Source: src}

		Convey("Single is the single-playable envelope", func() {
			var m Media = single
			So(m.Type(), ShouldEqual, TypeSingle)
			So(m.Stream(), ShouldEqual, src)
		})

		Convey("Type names", func() {
			So(TypeSingle.String(), ShouldEqual, "single")
			So(TypeMulti.String(), ShouldEqual, "multi")
			So(MediaType(0).String(), ShouldEqual, "unknown")
		})

		Convey("Source displays as its URL", func() {
			So(src.String(), ShouldEqual, "https://example.com/bbb.mp4")
		})
	})
}

func TestEpisode(t *testing.T) {
	Convey("Episode", t, func() {
		ep := &Episode{Name: "Episode 1", Index: 1}
		So(ep.String(), ShouldEqual, "Episode 1")
	})
}

func TestConfigError(t *testing.T) {
	Convey("ConfigError", t, func() {
		Convey("Unknown source", func() {
			err := &ConfigError{Source: "rss"}
			So(err.Error(), ShouldEqual, `unknown source "rss"`)
		})

		Convey("Missing option", func() {
			err := &ConfigError{Source: "css", Option: "item_selector"}
			So(err.Error(), ShouldEqual, `source "css" requires option "item_selector"`)
		})
	})
}

// testScraper verifies that a minimal implementation satisfies the interface.
type testScraper struct{}

func (testScraper) Name() string { return "Test Scraper" }
func (testScraper) ID() string   { return "test" }
func (testScraper) Search(query string, options *Options) ([]*SearchResult, error) {
	return nil, nil
}
func (testScraper) Scrape(media *Metadata, options *Options) (Media, error) {
	return &Single{Source: &Source{URL: "https://example.com/x.mp4"}}, nil
}
func (testScraper) ScrapeEpisodes(media *Metadata, options *Options) ([]*Episode, error) {
	return nil, nil
}

func TestScraperContract(t *testing.T) {
	Convey("Scraper contract", t, func() {
		var s Scraper = testScraper{}
		So(s.Name(), ShouldEqual, "Test Scraper")

		media, err := s.Scrape(&Metadata{Query: "x"}, nil)
		So(err, ShouldBeNil)
		So(media.Type(), ShouldEqual, TypeSingle)

		episodes, err := s.ScrapeEpisodes(&Metadata{}, nil)
		So(err, ShouldBeNil)
		So(episodes, ShouldBeEmpty)
	})
}
