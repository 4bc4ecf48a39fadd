// Package tabs carries the page-identification contract: the popup
// frontend reports its active tab with every request, and the daemon
// derives the video key from the reported URL.
package tabs

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrMissingURL is returned when a request carries no page address.
	ErrMissingURL = errors.New("active page url missing")

	// ErrMissingTab is returned when a request carries no tab id.
	ErrMissingTab = errors.New("active tab id missing")
)

// Page identifies the active browser page a popup action targets.
type Page struct {
	// TabID addresses the page context on the playback channel.
	TabID string `json:"tab"`

	// URL is the page's full address; the video key is derived from it.
	URL string `json:"url"`
}

// FromRequest resolves the active page from query parameters. Both the
// tab id and the url are required; the popup always knows them.
func FromRequest(r *http.Request) (Page, error) {
	q := r.URL.Query()

	p := Page{
		TabID: strings.TrimSpace(q.Get("tab")),
		URL:   strings.TrimSpace(q.Get("url")),
	}
	return p, p.Validate()
}

// Validate checks the page carries both identifiers.
func (p Page) Validate() error {
	if p.URL == "" {
		return ErrMissingURL
	}
	if p.TabID == "" {
		return ErrMissingTab
	}
	return nil
}
