// Package main is the entry point for the openmovies application.
package main

import (
	"github.com/CalebBrendel/mov-cli-openmovies/cmd"
	"github.com/CalebBrendel/mov-cli-openmovies/config"
	"github.com/CalebBrendel/mov-cli-openmovies/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
