// Package cmd implements the command-line interface for openmovies.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/CalebBrendel/mov-cli-openmovies/icon"
	"github.com/CalebBrendel/mov-cli-openmovies/open"
	"github.com/CalebBrendel/mov-cli-openmovies/query"
	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
	"github.com/CalebBrendel/mov-cli-openmovies/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringP("query", "q", "", "The search query naming the entry to resolve")
	resolveCmd.Flags().BoolP("interactive", "i", false, "Choose the result to resolve from an interactive prompt")
	resolveCmd.Flags().Bool("first", false, "Resolve the first matching result without any notice")
	resolveCmd.Flags().BoolP("json", "j", false, "Format the resolved stream as a JSON object")
	resolveCmd.Flags().BoolP("open", "O", false, "Open the resolved stream URL with the system handler")

	resolveCmd.MarkFlagsMutuallyExclusive("interactive", "first")

	registerScraperFlags(resolveCmd)

	lo.Must0(resolveCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

// resolveCmd resolves a catalog entry into a playable stream source.
var resolveCmd = &cobra.Command{
	Use:   "resolve [url-or-query]",
	Short: "Resolve a catalog entry to a playable stream URL",
	Long: `Resolve a catalog entry into its stream source.

A direct http(s) argument is resolved as-is. Anything else is searched
for in the catalog first; the first match wins unless --interactive is
given.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target := ""
		if len(args) > 0 {
			target = strings.TrimSpace(args[0])
		}
		if target == "" {
			target = strings.TrimSpace(lo.Must(cmd.Flags().GetString("query")))
		}

		var (
			s        = activeProvider().CreateScraper()
			options  = scraperOptions(cmd)
			metadata = &scraper.Metadata{}
		)

		if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
			metadata.URL = target
		} else {
			metadata.Query = target

			results, err := s.Search(target, options)
			handleErr(err)

			if len(results) == 0 {
				handleErr(scraper.ErrNoResults)
			}

			chosen := results[0]
			if lo.Must(cmd.Flags().GetBool("interactive")) {
				chosen = pickResult(results)
			} else if len(results) > 1 && !lo.Must(cmd.Flags().GetBool("first")) {
				fmt.Fprintln(os.Stderr, style.Faint(fmt.Sprintf("Picked the first of %d results, pass --interactive to choose", len(results))))
			}

			metadata.URL = chosen.URL
			_ = query.Remember(chosen.Title, 2)
		}

		media, err := s.Scrape(metadata, options)
		handleErr(err)

		stream := media.Stream()

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(os.Stdout).Encode(stream))
		} else {
			fmt.Printf("%s %s\n", icon.Get(icon.Link), stream.URL)

			headers := lo.Keys(stream.Headers)
			sort.Strings(headers)
			for _, header := range headers {
				fmt.Println(style.Faint(fmt.Sprintf("  %s: %s", header, stream.Headers[header])))
			}
		}

		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.Run(stream.URL))
		}
	},
}

// pickResult prompts for one result out of many.
func pickResult(results []*scraper.SearchResult) *scraper.SearchResult {
	titles := lo.Map(results, func(r *scraper.SearchResult, _ int) string {
		return r.Title
	})

	var picked int
	prompt := &survey.Select{
		Message:  "Resolve which result?",
		Options:  titles,
		PageSize: 10,
	}
	handleErr(survey.AskOne(prompt, &picked))

	return results[picked]
}
