// Package httputiltest provides an in-memory Fetcher for tests.
package httputiltest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"gopkg.in/xmlpath.v2"

	"screenwave/internal/httputil"
)

// Fetcher serves canned bodies keyed by URL and records every request.
type Fetcher struct {
	Pages map[string]string

	mu    sync.Mutex
	calls []string
}

// New returns a Fetcher serving pages.
func New(pages map[string]string) *Fetcher {
	return &Fetcher{Pages: pages}
}

// Fetch returns the canned page or a 404 FetchError.
func (f *Fetcher) Fetch(_ context.Context, url, label string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	f.mu.Unlock()

	body, ok := f.Pages[url]
	if !ok {
		return "", &httputil.FetchError{URL: url, Label: label, StatusCode: http.StatusNotFound}
	}
	return body, nil
}

// FetchXML parses the canned page as XML.
func (f *Fetcher) FetchXML(ctx context.Context, url, label string) (*xmlpath.Node, error) {
	body, err := f.Fetch(ctx, url, label)
	if err != nil {
		return nil, err
	}
	root, err := xmlpath.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: parsing XML: %w", label, err)
	}
	return root, nil
}

// Calls returns the URLs requested so far, in order.
func (f *Fetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
