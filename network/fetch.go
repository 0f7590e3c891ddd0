// Package network provides the HTTP fetch layer shared by all catalog scrapers.
package network

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/CalebBrendel/mov-cli-openmovies/constant"
	"github.com/CalebBrendel/mov-cli-openmovies/log"
	"github.com/CalebBrendel/mov-cli-openmovies/util"
	"github.com/PuerkitoBio/goquery"
)

// get issues a single GET request with the caller headers merged over the
// default User-Agent and returns the response when its status is 2xx.
func get(url string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	log.Debugf("GET %s", url)

	resp, err := Client().Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		util.Ignore(resp.Body.Close)
		return nil, &HTTPError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return resp, nil
}

// FetchText retrieves the raw response body as a string.
func FetchText(url string, headers map[string]string) (string, error) {
	resp, err := get(url, headers)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{URL: url, Err: err}
	}

	return string(body), nil
}

// FetchJSON retrieves and decodes a JSON response body into out.
func FetchJSON(url string, headers map[string]string, out any) error {
	resp, err := get(url, headers)
	if err != nil {
		return err
	}
	defer util.Ignore(resp.Body.Close)

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ParseError{URL: url, Err: err}
	}

	return nil
}

// FetchHTML retrieves a page and parses it into a queryable document.
func FetchHTML(url string, headers map[string]string) (*goquery.Document, error) {
	resp, err := get(url, headers)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(resp.Body.Close)

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}

	return doc, nil
}
