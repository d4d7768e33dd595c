// Package provider scrapes the front-end sites that embed the Screenwave
// player and turns their pages into media.SiteMetadata.
package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"screenwave/internal/httputil"
	"screenwave/internal/media"
	"screenwave/internal/variant"
)

// SiteResolver is the interface each front-end site implements.
type SiteResolver interface {
	// Name returns the site name used in logs.
	Name() string

	// Resolve fetches pageURL and extracts its metadata and embed URL.
	Resolve(ctx context.Context, pageURL string) (*media.SiteMetadata, error)
}

// Sites holds one resolver per supported site.
type Sites struct {
	cinemassacre *Cinemassacre
	teamFourStar *TeamFourStar
}

// NewSites creates resolvers for every supported site sharing one fetcher.
func NewSites(fetcher httputil.Fetcher, log *logrus.Entry) *Sites {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Sites{
		cinemassacre: NewCinemassacre(fetcher, log),
		teamFourStar: NewTeamFourStar(fetcher, log),
	}
}

// For returns the resolver for a site variant.
func (s *Sites) For(v variant.Variant) (SiteResolver, bool) {
	switch v.(type) {
	case variant.Cinemassacre:
		return s.cinemassacre, true
	case variant.TeamFourStar:
		return s.teamFourStar, true
	default:
		return nil, false
	}
}

// fetchDocument fetches a URL and parses it into a goquery Document.
func fetchDocument(ctx context.Context, f httputil.Fetcher, url, label string) (*goquery.Document, error) {
	body, err := f.Fetch(ctx, url, label)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return doc, nil
}
