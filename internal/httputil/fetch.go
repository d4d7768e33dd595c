package httputil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"

	"screenwave/internal/media"
)

const (
	acceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptXML  = "application/xml,text/xml;q=0.9,*/*;q=0.8"

	maxBodySize = 10 * 1024 * 1024 // 10MB limit
)

// Fetcher is what the resolvers need from the network.
type Fetcher interface {
	// Fetch returns the body of url as text. label describes the request in logs.
	Fetch(ctx context.Context, url, label string) (string, error)

	// FetchXML fetches url and parses the body as an XML document.
	FetchXML(ctx context.Context, url, label string) (*xmlpath.Node, error)
}

// FetchError wraps any network or HTTP failure.
type FetchError struct {
	URL        string
	Label      string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d for %s", e.Label, e.StatusCode, e.URL)
	}
	return fmt.Sprintf("%s: %v", e.Label, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports FetchError as media.ErrFetch.
func (e *FetchError) Is(target error) bool {
	return target == media.ErrFetch
}

// Client is the production Fetcher. It is safe for concurrent use.
type Client struct {
	http      *http.Client
	userAgent string
	log       *logrus.Entry
}

// NewFetcher wraps an http.Client into a Fetcher.
func NewFetcher(client *http.Client, userAgent string, log *logrus.Entry) *Client {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Client{
		http:      client,
		userAgent: userAgent,
		log:       log.WithField("component", "fetch"),
	}
}

// Fetch returns the response body of url as a string.
func (c *Client) Fetch(ctx context.Context, url, label string) (string, error) {
	body, err := c.get(ctx, url, label, acceptHTML)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchXML fetches url and parses it as XML.
func (c *Client) FetchXML(ctx context.Context, url, label string) (*xmlpath.Node, error) {
	body, err := c.get(ctx, url, label, acceptXML)
	if err != nil {
		return nil, err
	}

	root, err := xmlpath.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: parsing XML: %w", label, err)
	}
	return root, nil
}

func (c *Client) get(ctx context.Context, url, label, accept string) ([]byte, error) {
	c.log.WithFields(logrus.Fields{"label": label, "url": url}).Debug("fetching")

	resp, err := Get(ctx, c.http, url, c.userAgent, accept)
	if err != nil {
		return nil, &FetchError{URL: url, Label: label, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, Label: label, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &FetchError{URL: url, Label: label, Err: fmt.Errorf("reading response: %w", err)}
	}

	return body, nil
}
