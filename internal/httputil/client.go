// Package httputil provides the HTTP client used for every page, player and
// manifest fetch, plus input sanitization utilities.
package httputil

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"
)

// DefaultUserAgent is sent when the config does not override it.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/121.0"

// NewClient creates a hardened HTTP client with secure defaults.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			ForceAttemptHTTP2:   true,
			MaxIdleConns:        10,
			IdleConnTimeout:     30 * time.Second,
			DisableCompression:  false,
			MaxIdleConnsPerHost: 5,
		},
	}
}

// Get performs a GET request with standard browser-like headers.
// accept selects between HTML and XML responses for otherwise identical requests.
func Get(ctx context.Context, client *http.Client, url, userAgent, accept string) (*http.Response, error) {
	if err := ValidateURL(url); err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	return client.Do(req)
}
