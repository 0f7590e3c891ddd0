// Package cmd implements the command-line interface for openmovies.
package cmd

import (
	"fmt"

	"github.com/CalebBrendel/mov-cli-openmovies/key"
	"github.com/CalebBrendel/mov-cli-openmovies/openmovies"
	"github.com/CalebBrendel/mov-cli-openmovies/provider"
	"github.com/CalebBrendel/mov-cli-openmovies/scraper"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scraperFlag maps one catalog option flag onto the config key supplying its default.
type scraperFlag struct {
	long  string
	key   string
	usage string
}

var scraperFlags = []scraperFlag{
	{"source", key.ScraperSource, "Catalog source mode (blender-json, html-list, css)"},
	{"url", key.ScraperURL, "Catalog page URL to scrape"},
	{"item-selector", key.ScraperItemSelector, "CSS selector matching one catalog item per node"},
	{"title-selector", key.ScraperTitleSelector, "CSS selector for the title inside a catalog item"},
	{"href-attr", key.ScraperHrefAttr, "Attribute read for the item link"},
	{"headers", key.ScraperHeaders, "Extra request headers as a JSON object string"},
}

// registerScraperFlags attaches the catalog option flags to a command.
func registerScraperFlags(cmd *cobra.Command) {
	for _, f := range scraperFlags {
		cmd.Flags().String(f.long, "", f.usage)
	}

	lo.Must0(cmd.RegisterFlagCompletionFunc("source", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{
			openmovies.SourceBlenderJSON,
			openmovies.SourceHTMLList,
			openmovies.SourceCSS,
		}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// scraperOptions assembles the per-call option bag, changed flags overriding config.
func scraperOptions(cmd *cobra.Command) *scraper.Options {
	value := func(flag, configKey string) string {
		if cmd.Flags().Changed(flag) {
			return lo.Must(cmd.Flags().GetString(flag))
		}

		return viper.GetString(configKey)
	}

	return &scraper.Options{
		Source:        value("source", key.ScraperSource),
		URL:           value("url", key.ScraperURL),
		ItemSelector:  value("item-selector", key.ScraperItemSelector),
		TitleSelector: value("title-selector", key.ScraperTitleSelector),
		HrefAttr:      value("href-attr", key.ScraperHrefAttr),
		HeadersJSON:   value("headers", key.ScraperHeaders),
	}
}

func completionScraperNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names := lo.Map(provider.Builtins(), func(p *provider.Provider, _ int) string {
		return p.Name
	})

	return names, cobra.ShellCompDirectiveNoFileComp
}

// activeProvider resolves the configured scraper, exiting with a hint on typos.
func activeProvider() *provider.Provider {
	name := viper.GetString(key.ScraperDefault)
	if name == "" {
		return provider.Default()
	}

	p, ok := provider.Get(name)
	if !ok {
		if suggestion, found := provider.Suggest(name); found {
			handleErr(fmt.Errorf("scraper not found: %s, did you mean %s?", name, suggestion.Name))
		}

		handleErr(fmt.Errorf("scraper not found: %s", name))
	}

	return p
}
