package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeScraper struct {
	results []*scraper.SearchResult
}

func (f *fakeScraper) Name() string { return "Fake" }
func (f *fakeScraper) ID() string   { return "FAKE" }

func (f *fakeScraper) Search(query string, options *scraper.Options) ([]*scraper.SearchResult, error) {
	return f.results, nil
}

func (f *fakeScraper) Scrape(media *scraper.Metadata, options *scraper.Options) (scraper.Media, error) {
	return &scraper.Single{Source: &scraper.Source{URL: media.URL}}, nil
}

func (f *fakeScraper) ScrapeEpisodes(media *scraper.Metadata, options *scraper.Options) ([]*scraper.Episode, error) {
	return nil, nil
}

func TestWriteJson(t *testing.T) {
	Convey("writeJson", t, func() {
		Convey("Should produce valid JSON for an empty result list", func() {
			var buf bytes.Buffer
			opts := &Options{Query: "test", Json: true}
			err := writeJson(&buf, nil, opts)
			So(err, ShouldBeNil)

			var output Output
			err = json.Unmarshal(buf.Bytes(), &output)
			So(err, ShouldBeNil)
			So(output.Query, ShouldEqual, "test")
			So(output.Results, ShouldHaveLength, 0)
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a scraper with results", t, func() {
		fake := &fakeScraper{results: []*scraper.SearchResult{
			{Title: "Big Buck Bunny", URL: "https://example.com/bbb.mp4"},
			{Title: "Sintel", URL: "https://example.com/sintel.mp4"},
		}}

		Convey("When running with a first picker and stream resolution", func() {
			var buf bytes.Buffer
			picker, err := ParseResultPicker("first", "")
			So(err, ShouldBeNil)

			err = Run(&Options{
				Out:          &buf,
				Scraper:      fake,
				Query:        "bunny",
				ResultPicker: mo.Some(picker),
				Streams:      true,
				Json:         true,
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)

			Convey("Then the output holds the picked result with its stream", func() {
				So(output.Results, ShouldHaveLength, 1)
				So(output.Results[0].Result.Title, ShouldEqual, "Big Buck Bunny")
				So(output.Results[0].Stream.URL, ShouldEqual, "https://example.com/bbb.mp4")
			})
		})

		Convey("When running in plain text mode", func() {
			var buf bytes.Buffer

			err := Run(&Options{
				Out:     &buf,
				Scraper: fake,
				Query:   "any",
			})
			So(err, ShouldBeNil)

			Convey("Then every result URL is printed", func() {
				So(buf.String(), ShouldContainSubstring, "https://example.com/bbb.mp4")
				So(buf.String(), ShouldContainSubstring, "https://example.com/sintel.mp4")
			})
		})

		Convey("When running with a limit", func() {
			var buf bytes.Buffer

			err := Run(&Options{
				Out:     &buf,
				Scraper: fake,
				Limit:   1,
				Json:    true,
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)

			Convey("Then only the leading results survive", func() {
				So(output.Results, ShouldHaveLength, 1)
				So(output.Results[0].Result.Title, ShouldEqual, "Big Buck Bunny")
			})
		})
	})
}

func TestParseResultPicker(t *testing.T) {
	Convey("Given picker descriptions", t, func() {
		results := []*scraper.SearchResult{
			{Title: "One", URL: "u1"},
			{Title: "Two", URL: "u2"},
			{Title: "Three", URL: "u3"},
		}

		Convey("first picks the head", func() {
			picker, err := ParseResultPicker("first", "")
			So(err, ShouldBeNil)
			So(picker(results).Title, ShouldEqual, "One")
		})

		Convey("last picks the tail", func() {
			picker, err := ParseResultPicker("last", "")
			So(err, ShouldBeNil)
			So(picker(results).Title, ShouldEqual, "Three")
		})

		Convey("exact picks by title", func() {
			picker, err := ParseResultPicker("exact", "Two")
			So(err, ShouldBeNil)
			So(picker(results).Title, ShouldEqual, "Two")
		})

		Convey("index picks by position, clamped to the list", func() {
			picker, err := ParseResultPicker("1", "")
			So(err, ShouldBeNil)
			So(picker(results).Title, ShouldEqual, "Two")

			picker, err = ParseResultPicker("99", "")
			So(err, ShouldBeNil)
			So(picker(results).Title, ShouldEqual, "Three")
		})

		Convey("anything else is rejected", func() {
			_, err := ParseResultPicker("bogus", "")
			So(err, ShouldNotBeNil)
		})
	})
}
