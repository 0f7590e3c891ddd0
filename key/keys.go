// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 16

// Scraper Defaults - these keys supply the option bag values used when a command does not override them.
const (
	ScraperDefault       = "scraper.default"
	ScraperSource        = "scraper.source"
	ScraperURL           = "scraper.url"
	ScraperItemSelector  = "scraper.item_selector"
	ScraperTitleSelector = "scraper.title_selector"
	ScraperHrefAttr      = "scraper.href_attr"
	ScraperHeaders       = "scraper.headers"
)

// Network Transport - these keys configure the outbound HTTP client.
const (
	NetworkTLSSpoof = "network.tls_spoof"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchLimit                = "search.limit"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
