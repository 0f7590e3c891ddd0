package network

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CalebBrendel/mov-cli-openmovies/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFetchText(t *testing.T) {
	Convey("FetchText", t, func() {
		Convey("Returns the body on success", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("hello"))
			}))
			defer srv.Close()

			body, err := FetchText(srv.URL, nil)
			So(err, ShouldBeNil)
			So(body, ShouldEqual, "hello")
		})

		Convey("Sends the default User-Agent and merges caller headers", func() {
			var userAgent, referer string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userAgent = r.Header.Get("User-Agent")
				referer = r.Header.Get("Referer")
			}))
			defer srv.Close()

			_, err := FetchText(srv.URL, map[string]string{"Referer": "https://example.com"})
			So(err, ShouldBeNil)
			So(userAgent, ShouldEqual, constant.UserAgent)
			So(referer, ShouldEqual, "https://example.com")
		})

		Convey("Caller headers override the defaults", func() {
			var userAgent string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userAgent = r.Header.Get("User-Agent")
			}))
			defer srv.Close()

			_, err := FetchText(srv.URL, map[string]string{"User-Agent": "custom"})
			So(err, ShouldBeNil)
			So(userAgent, ShouldEqual, "custom")
		})

		Convey("Maps non-2xx statuses to HTTPError", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer srv.Close()

			_, err := FetchText(srv.URL, nil)
			So(err, ShouldNotBeNil)

			var httpErr *HTTPError
			So(errors.As(err, &httpErr), ShouldBeTrue)
			So(httpErr.StatusCode, ShouldEqual, http.StatusNotFound)
			So(httpErr.URL, ShouldEqual, srv.URL)
		})

		Convey("Maps unreachable hosts to NetworkError", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
			url := srv.URL
			srv.Close()

			_, err := FetchText(url, nil)
			So(err, ShouldNotBeNil)

			var netErr *NetworkError
			So(errors.As(err, &netErr), ShouldBeTrue)
			So(netErr.Unwrap(), ShouldNotBeNil)
		})
	})
}

func TestFetchJSON(t *testing.T) {
	Convey("FetchJSON", t, func() {
		Convey("Decodes a JSON body", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"title": "Big Buck Bunny"}]`))
			}))
			defer srv.Close()

			var entries []struct {
				Title string `json:"title"`
			}
			So(FetchJSON(srv.URL, nil, &entries), ShouldBeNil)
			So(len(entries), ShouldEqual, 1)
			So(entries[0].Title, ShouldEqual, "Big Buck Bunny")
		})

		Convey("Maps malformed JSON to ParseError", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			}))
			defer srv.Close()

			var out any
			err := FetchJSON(srv.URL, nil, &out)
			So(err, ShouldNotBeNil)

			var parseErr *ParseError
			So(errors.As(err, &parseErr), ShouldBeTrue)
		})
	})
}

func TestFetchHTML(t *testing.T) {
	Convey("FetchHTML", t, func() {
		Convey("Parses a page into a queryable document", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html><body><a href="/a.mp4">A</a><a href="/b.mp4">B</a></body></html>`))
			}))
			defer srv.Close()

			doc, err := FetchHTML(srv.URL, nil)
			So(err, ShouldBeNil)
			So(doc.Find("a").Length(), ShouldEqual, 2)
		})
	})
}
