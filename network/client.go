// Package network provides the HTTP fetch layer shared by all catalog scrapers.
//
// Every fetch issues exactly one GET with a fixed deadline and maps failures
// onto a small error taxonomy (HTTPError, NetworkError, ParseError) that
// callers can inspect with errors.As.
package network

import (
	"net/http"
	"time"

	"github.com/CalebBrendel/mov-cli-openmovies/key"
	"github.com/spf13/viper"
)

// FetchTimeout is the fixed deadline applied to every catalog request.
// No retries, no backoff: past the deadline the call fails.
const FetchTimeout = 20 * time.Second

// defaultClient is the singleton HTTP client shared across the application.
// It is configured with increased concurrency limits tailored for scraping workflows.
var defaultClient = &http.Client{
	Timeout:   FetchTimeout,
	Transport: newTransport(),
}

// Client returns the HTTP client used for catalog requests. With the
// network.tls_spoof key enabled, requests are dialed with a spoofed browser
// TLS fingerprint instead of Go's default handshake.
func Client() *http.Client {
	if viper.GetBool(key.NetworkTLSSpoof) {
		return spoofedClient
	}
	return defaultClient
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = FetchTimeout
	return t
}
