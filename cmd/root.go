// Package cmd implements the command-line interface for openmovies.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/CalebBrendel/mov-cli-openmovies/color"
	"github.com/CalebBrendel/mov-cli-openmovies/constant"
	"github.com/CalebBrendel/mov-cli-openmovies/icon"
	"github.com/CalebBrendel/mov-cli-openmovies/key"
	"github.com/CalebBrendel/mov-cli-openmovies/log"
	"github.com/CalebBrendel/mov-cli-openmovies/style"
	"github.com/CalebBrendel/mov-cli-openmovies/tui"
	"github.com/CalebBrendel/mov-cli-openmovies/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., emoji, nerd, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("scraper", "s", "", "Specify the scraper to search with")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("scraper", completionScraperNames))
	lo.Must0(viper.BindPFlag(key.ScraperDefault, rootCmd.PersistentFlags().Lookup("scraper")))

	registerScraperFlags(rootCmd)

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the openmovies application.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "A minimalist command-line interface for movie catalog discovery",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Red).Render("    - A minimalist command-line interface for movie catalog discovery"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Provider:       activeProvider(),
			ScraperOptions: scraperOptions(cmd),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
