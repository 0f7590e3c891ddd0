// Package cmd implements the command-line interface for openmovies.
package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/CalebBrendel/mov-cli-openmovies/filesystem"
	"github.com/CalebBrendel/mov-cli-openmovies/inline"
	"github.com/CalebBrendel/mov-cli-openmovies/key"
	"github.com/CalebBrendel/mov-cli-openmovies/query"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("query", "q", "", "The search query to filter the catalog with")
	searchCmd.Flags().StringP("pick", "p", "", "Criteria for selecting a single result from the matches")
	searchCmd.Flags().IntP("limit", "l", 0, "Maximum number of results to print, 0 for unlimited")
	searchCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	searchCmd.Flags().BoolP("streams", "V", false, "Resolve every printed result into its stream source")
	searchCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	registerScraperFlags(searchCmd)

	lo.Must0(searchCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

// searchCmd searches the catalog in non-interactive, scriptable mode.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog and print matching results",
	Long: `Search the catalog in non-interactive, scriptable mode.

An empty query prints the whole catalog. Result selectors for --pick:
  first - first result in the list
  last - last result in the list
  exact - result whose title equals the query
  [number] - select result by index (starting from 0)`,
	Run: func(cmd *cobra.Command, args []string) {
		searchQuery := lo.Must(cmd.Flags().GetString("query"))
		if searchQuery == "" && len(args) > 0 {
			searchQuery = strings.Join(args, " ")
		}

		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer = os.Stdout
		if output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			writer = file
		}

		picker := mo.None[inline.ResultPicker]()
		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			fn, err := inline.ParseResultPicker(pick, searchQuery)
			handleErr(err)
			picker = mo.Some(fn)
		}

		limit := lo.Must(cmd.Flags().GetInt("limit"))
		if !cmd.Flags().Changed("limit") {
			limit = viper.GetInt(key.SearchLimit)
		}

		if searchQuery != "" {
			_ = query.Remember(searchQuery, 1)
		}

		options := &inline.Options{
			Out:            writer,
			Scraper:        activeProvider().CreateScraper(),
			ScraperOptions: scraperOptions(cmd),
			Query:          searchQuery,
			ResultPicker:   picker,
			Limit:          limit,
			Streams:        lo.Must(cmd.Flags().GetBool("streams")),
			Json:           lo.Must(cmd.Flags().GetBool("json")),
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	searchCmd.AddCommand(searchSchemaCmd)
}

// searchSchemaCmd generates the JSON schema of the structured search output.
var searchSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the structured search output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "entry", "output", "searchresult", "source":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		schema := reflector.Reflect(&inline.Output{})
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
