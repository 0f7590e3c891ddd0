package openmovies

import (
	"testing"

	"github.com/CalebBrendel/mov-cli-openmovies/constant"
	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadHeaders(t *testing.T) {
	Convey("Given an options bag", t, func() {
		Convey("When the mapping form is set", func() {
			options := &scraper.Options{
				Headers:     map[string]string{"Referer": "https://example.com"},
				HeadersJSON: `{"Referer": "ignored"}`,
			}

			Convey("Then it wins over the JSON form", func() {
				So(loadHeaders(options), ShouldResemble, map[string]string{"Referer": "https://example.com"})
			})
		})

		Convey("When only the JSON form is set", func() {
			options := &scraper.Options{HeadersJSON: `{"Referer": "https://example.com", "X-Token": "abc"}`}

			Convey("Then it is decoded", func() {
				So(loadHeaders(options), ShouldResemble, map[string]string{
					"Referer": "https://example.com",
					"X-Token": "abc",
				})
			})
		})

		Convey("When the JSON form does not parse", func() {
			Convey("Then it is silently dropped", func() {
				So(loadHeaders(&scraper.Options{HeadersJSON: "{not json"}), ShouldBeNil)
				So(loadHeaders(&scraper.Options{HeadersJSON: `["not", "a", "mapping"]`}), ShouldBeNil)
			})
		})

		Convey("When nothing is set", func() {
			Convey("Then there are no headers", func() {
				So(loadHeaders(&scraper.Options{}), ShouldBeNil)
				So(loadHeaders(nil), ShouldBeNil)
			})
		})
	})
}

func TestMergeHeaders(t *testing.T) {
	Convey("Given header options", t, func() {
		Convey("When none are set", func() {
			Convey("Then only the default User-Agent remains", func() {
				So(mergeHeaders(nil), ShouldResemble, map[string]string{"User-Agent": constant.UserAgent})
			})
		})

		Convey("When custom headers are set", func() {
			options := &scraper.Options{Headers: map[string]string{
				"Referer":    "https://example.com",
				"User-Agent": "custom-agent",
			}}

			Convey("Then they overlay the default User-Agent", func() {
				So(mergeHeaders(options), ShouldResemble, map[string]string{
					"Referer":    "https://example.com",
					"User-Agent": "custom-agent",
				})
			})
		})
	})
}
