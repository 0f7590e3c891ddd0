// Package cmd implements the command-line interface for openmovies.
package cmd

import (
	"os"

	"github.com/CalebBrendel/mov-cli-openmovies/color"
	"github.com/CalebBrendel/mov-cli-openmovies/provider"
	"github.com/CalebBrendel/mov-cli-openmovies/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scrapersCmd)

	scrapersCmd.Flags().BoolP("raw", "r", false, "Suppress the header in the output")
	scrapersCmd.SetOut(os.Stdout)
}

// scrapersCmd displays a summary of all registered scrapers.
var scrapersCmd = &cobra.Command{
	Use:   "scrapers",
	Short: "Display a collection of all registered scrapers",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.Blue).Bold(true).Render

		if printHeader {
			cmd.Println(headerStyle("Builtin:"))
		}

		for _, p := range provider.Builtins() {
			cmd.Println(p.Name)
		}
	},
}
