package openmovies

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CalebBrendel/mov-cli-openmovies/constant"
	"github.com/CalebBrendel/mov-cli-openmovies/network"
	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
	. "github.com/smartystreets/goconvey/convey"
)

const feedJSON = `[
  {"title": "Big Buck Bunny", "sources": ["https://example.com/bbb.mp4"]},
  {"title": "", "sources": ["https://example.com/untitled.mp4"]},
  {"title": "No Sources", "sources": []},
  {"title": "Sintel", "sources": ["https://example.com/sintel.mp4", "https://mirror.example.com/sintel.mp4"]}
]`

const linkListPage = `<!DOCTYPE html>
<html><body>
<a href="one.mp4">  Movie   One </a>
<a href="/two.m3u8">Movie Two</a>
<a href="https://cdn.example.com/three.webm">Movie Three</a>
<a href="page.html">Not a stream</a>
<a href="empty.mp4">   </a>
<a href="FOUR.MP4">Movie Four</a>
</body></html>`

const selectorPage = `<!DOCTYPE html>
<html><body>
<div class="item" data-stream="/streams/one.mp4"><h2> Movie  One </h2><p>First.</p></div>
<div class="item"><a href="two.mp4">Movie Two</a></div>
<div class="item"><p>No link here</p></div>
<div class="item" data-stream="/three.mp4"></div>
</body></html>`

func serve(payload string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, payload)
	}))
}

func TestSearchFeed(t *testing.T) {
	Convey("Given a demo feed catalog", t, func() {
		srv := serve(feedJSON)
		defer srv.Close()

		options := &scraper.Options{URL: srv.URL}

		Convey("When searching with a matching query", func() {
			results, err := New().Search("buck", options)

			Convey("Then only matching entries come back", func() {
				So(err, ShouldBeNil)
				So(results, ShouldResemble, []*scraper.SearchResult{
					{Title: "Big Buck Bunny", URL: "https://example.com/bbb.mp4"},
				})
			})
		})

		Convey("When searching with an empty query", func() {
			results, err := New().Search("", options)

			Convey("Then every usable entry comes back, first source each", func() {
				So(err, ShouldBeNil)
				So(results, ShouldResemble, []*scraper.SearchResult{
					{Title: "Big Buck Bunny", URL: "https://example.com/bbb.mp4"},
					{Title: "Sintel", URL: "https://example.com/sintel.mp4"},
				})
			})
		})

		Convey("When nothing matches the query", func() {
			results, err := New().Search("no such movie", options)

			Convey("Then the unfiltered entries come back instead", func() {
				So(err, ShouldBeNil)
				So(results, ShouldHaveLength, 2)
				So(results[0].Title, ShouldEqual, "Big Buck Bunny")
			})
		})

		Convey("When the catalog answers with an error status", func() {
			failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "gone", http.StatusNotFound)
			}))
			defer failing.Close()

			_, err := New().Search("buck", &scraper.Options{URL: failing.URL})

			Convey("Then the failure propagates", func() {
				var httpErr *network.HTTPError
				So(errors.As(err, &httpErr), ShouldBeTrue)
				So(httpErr.StatusCode, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestSearchFallbackLimit(t *testing.T) {
	Convey("Given a catalog larger than the fallback window", t, func() {
		entries := make([]string, 0, 12)
		for i := 1; i <= 12; i++ {
			entries = append(entries, fmt.Sprintf(`{"title": "Movie %02d", "sources": ["https://example.com/%02d.mp4"]}`, i, i))
		}

		srv := serve("[" + strings.Join(entries, ",") + "]")
		defer srv.Close()

		Convey("When no entry matches the query", func() {
			results, err := New().Search("definitely absent", &scraper.Options{URL: srv.URL})

			Convey("Then the first entries come back, capped", func() {
				So(err, ShouldBeNil)
				So(results, ShouldHaveLength, fallbackLimit)
				So(results[0].Title, ShouldEqual, "Movie 01")
				So(results[len(results)-1].Title, ShouldEqual, "Movie 10")
			})
		})
	})
}

func TestSearchHTMLList(t *testing.T) {
	Convey("Given a page of stream links", t, func() {
		srv := serve(linkListPage)
		defer srv.Close()

		options := &scraper.Options{Source: SourceHTMLList, URL: srv.URL + "/movies/"}

		Convey("When searching with an empty query", func() {
			results, err := New().Search("", options)

			Convey("Then stream anchors are kept, titled and absolutized", func() {
				So(err, ShouldBeNil)
				So(results, ShouldResemble, []*scraper.SearchResult{
					{Title: "Movie One", URL: srv.URL + "/movies/one.mp4"},
					{Title: "Movie Two", URL: srv.URL + "/two.m3u8"},
					{Title: "Movie Three", URL: "https://cdn.example.com/three.webm"},
					{Title: "Movie Four", URL: srv.URL + "/movies/FOUR.MP4"},
				})
			})
		})

		Convey("When searching for one title", func() {
			results, err := New().Search("movie two", options)

			Convey("Then only that link comes back", func() {
				So(err, ShouldBeNil)
				So(results, ShouldHaveLength, 1)
				So(results[0].URL, ShouldEqual, srv.URL+"/two.m3u8")
			})
		})
	})
}

func TestSearchCSS(t *testing.T) {
	Convey("Given a catalog page and selectors for it", t, func() {
		srv := serve(selectorPage)
		defer srv.Close()

		options := &scraper.Options{
			Source:        SourceCSS,
			URL:           srv.URL + "/catalog",
			ItemSelector:  "div.item",
			TitleSelector: "h2",
			HrefAttr:      "data-stream",
		}

		Convey("When searching with an empty query", func() {
			results, err := New().Search("", options)

			Convey("Then items resolve through the attribute, anchor and href fallbacks", func() {
				So(err, ShouldBeNil)
				So(results, ShouldResemble, []*scraper.SearchResult{
					{Title: "Movie One", URL: srv.URL + "/streams/one.mp4"},
					{Title: "Movie Two", URL: srv.URL + "/two.mp4"},
					{Title: "/three.mp4", URL: srv.URL + "/three.mp4"},
				})
			})
		})
	})
}

func TestSearchConfigErrorBeforeNetwork(t *testing.T) {
	Convey("Given a css catalog missing its item selector", t, func() {
		hit := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hit = true
		}))
		defer srv.Close()

		Convey("When searching", func() {
			_, err := New().Search("anything", &scraper.Options{Source: SourceCSS, URL: srv.URL})

			Convey("Then it fails with a ConfigError without touching the network", func() {
				var configErr *scraper.ConfigError
				So(errors.As(err, &configErr), ShouldBeTrue)
				So(hit, ShouldBeFalse)
			})
		})
	})
}

func TestScrape(t *testing.T) {
	Convey("Given chosen metadata", t, func() {
		Convey("When it carries a URL", func() {
			media, err := New().Scrape(&scraper.Metadata{URL: "https://example.com/bbb.mp4"}, nil)

			Convey("Then that URL becomes the stream", func() {
				So(err, ShouldBeNil)
				So(media.Type(), ShouldEqual, scraper.TypeSingle)
				So(media.Stream().URL, ShouldEqual, "https://example.com/bbb.mp4")
				So(media.Stream().Headers, ShouldResemble, map[string]string{"User-Agent": constant.UserAgent})
			})
		})

		Convey("When it carries only a query", func() {
			media, err := New().Scrape(&scraper.Metadata{Query: "  https://example.com/found.mp4 "}, nil)

			Convey("Then the trimmed query is used verbatim", func() {
				So(err, ShouldBeNil)
				So(media.Stream().URL, ShouldEqual, "https://example.com/found.mp4")
			})
		})

		Convey("When it is empty", func() {
			srv := serve(feedJSON)
			defer srv.Close()

			media, err := New().Scrape(&scraper.Metadata{}, &scraper.Options{URL: srv.URL})

			Convey("Then an inline search picks the first catalog entry", func() {
				So(err, ShouldBeNil)
				So(media.Stream().URL, ShouldEqual, "https://example.com/bbb.mp4")
			})
		})

		Convey("When it is empty and the catalog has nothing", func() {
			srv := serve("[]")
			defer srv.Close()

			_, err := New().Scrape(nil, &scraper.Options{URL: srv.URL})

			Convey("Then it fails with ErrNoResults", func() {
				So(errors.Is(err, scraper.ErrNoResults), ShouldBeTrue)
			})
		})

		Convey("When custom headers are configured", func() {
			options := &scraper.Options{Headers: map[string]string{"Referer": "https://example.com", "User-Agent": "custom"}}
			media, err := New().Scrape(&scraper.Metadata{URL: "https://example.com/bbb.mp4"}, options)

			Convey("Then they overlay the default User-Agent on the stream", func() {
				So(err, ShouldBeNil)
				So(media.Stream().Headers, ShouldResemble, map[string]string{
					"Referer":    "https://example.com",
					"User-Agent": "custom",
				})
			})
		})
	})
}

func TestScrapeEpisodes(t *testing.T) {
	Convey("Given any metadata", t, func() {
		episodes, err := New().ScrapeEpisodes(&scraper.Metadata{URL: "https://example.com/bbb.mp4"}, nil)

		Convey("Then there is no episodic data and no error", func() {
			So(err, ShouldBeNil)
			So(episodes, ShouldBeEmpty)
		})
	})
}
