package provider

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"screenwave/internal/httputil"
	"screenwave/internal/media"
	"screenwave/internal/variant"
)

// Cinemassacre resolves dated cinemassacre.com article pages.
type Cinemassacre struct {
	fetcher httputil.Fetcher
	log     *logrus.Entry
}

// NewCinemassacre creates a Cinemassacre resolver.
func NewCinemassacre(fetcher httputil.Fetcher, log *logrus.Entry) *Cinemassacre {
	return &Cinemassacre{
		fetcher: fetcher,
		log:     log.WithField("site", "cinemassacre"),
	}
}

func (c *Cinemassacre) Name() string { return "cinemassacre" }

// Resolve fetches the article and extracts its metadata. The upload date
// comes from the URL itself.
func (c *Cinemassacre) Resolve(ctx context.Context, pageURL string) (*media.SiteMetadata, error) {
	v, ok := variant.Classify(pageURL).(variant.Cinemassacre)
	if !ok {
		return nil, fmt.Errorf("%w: not a Cinemassacre article: %s", media.ErrUnsupportedURL, pageURL)
	}

	c.log.WithField("display_id", v.DisplayID).Debug("resolving article")

	doc, err := fetchDocument(ctx, c.fetcher, pageURL, "Downloading webpage")
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", v.DisplayID, err)
	}

	meta, err := parseCinemassacre(doc, v)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", v.DisplayID, err)
	}
	return meta, nil
}
