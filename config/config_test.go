package config

import (
	"testing"

	"github.com/CalebBrendel/mov-cli-openmovies/filesystem"
	"github.com/CalebBrendel/mov-cli-openmovies/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given a clean in-memory filesystem", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Defaults are applied", func() {
			So(viper.GetString(key.ScraperSource), ShouldEqual, "blender-json")
			So(viper.GetString(key.ScraperHrefAttr), ShouldEqual, "href")
			So(viper.GetInt(key.SearchLimit), ShouldEqual, 0)
			So(viper.GetBool(key.CliColored), ShouldBeTrue)
		})

		Convey("Every default is registered exactly once", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
			So(len(EnvExposed), ShouldEqual, key.DefinedFieldsCount)
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		field := Default[key.NetworkTLSSpoof]

		Convey("Env() maps dots to underscores with the app prefix", func() {
			So(field.Env(), ShouldEqual, "OPENMOVIES_NETWORK_TLS_SPOOF")
		})

		Convey("Pretty() renders without panicking", func() {
			So(Setup(), ShouldBeNil)
			So(field.Pretty(), ShouldNotBeEmpty)
		})
	})
}
