package query

import (
	"testing"

	"github.com/CalebBrendel/mov-cli-openmovies/filesystem"
	"github.com/CalebBrendel/mov-cli-openmovies/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestRemember(t *testing.T) {
	Convey("Given remembered queries", t, func() {
		So(Remember("big buck bunny", 1), ShouldBeNil)
		So(Remember("sintel", 10), ShouldBeNil)

		Convey("When suggesting for a partial input", func() {
			memo = make(map[string][]*record)

			suggestions := SuggestMany("sin")

			Convey("Then the matching query comes back", func() {
				So(len(suggestions), ShouldBeGreaterThanOrEqualTo, 1)
				So(suggestions[0], ShouldEqual, "sintel")
			})
		})

		Convey("When remembering the same query again", func() {
			So(Remember("big buck bunny", 5), ShouldBeNil)

			Convey("Then its rank accumulates", func() {
				records := history()
				So(records["big buck bunny"].Rank, ShouldBeGreaterThanOrEqualTo, 6)
			})
		})
	})
}

func TestSanitize(t *testing.T) {
	Convey("Given a noisy query", t, func() {
		Convey("Then it is lowercased and trimmed", func() {
			So(sanitize("  Big Buck Bunny  "), ShouldEqual, "big buck bunny")
		})
	})
}

func TestSuggestDisabled(t *testing.T) {
	Convey("Given suggestions are turned off", t, func() {
		viper.Set(key.SearchShowQuerySuggestions, false)
		defer viper.Set(key.SearchShowQuerySuggestions, true)

		Convey("Then nothing is suggested", func() {
			So(SuggestMany("big"), ShouldBeEmpty)
			So(Suggest("big").IsAbsent(), ShouldBeTrue)
		})
	})
}
