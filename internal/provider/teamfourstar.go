package provider

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"screenwave/internal/httputil"
	"screenwave/internal/media"
	"screenwave/internal/variant"
)

// TeamFourStar resolves teamfourstar.com video pages.
type TeamFourStar struct {
	fetcher httputil.Fetcher
	log     *logrus.Entry
}

// NewTeamFourStar creates a TeamFourStar resolver.
func NewTeamFourStar(fetcher httputil.Fetcher, log *logrus.Entry) *TeamFourStar {
	return &TeamFourStar{
		fetcher: fetcher,
		log:     log.WithField("site", "teamfourstar"),
	}
}

func (t *TeamFourStar) Name() string { return "teamfourstar" }

// Resolve fetches the video page. Unlike Cinemassacre, the date and the
// description are both mandatory here.
func (t *TeamFourStar) Resolve(ctx context.Context, pageURL string) (*media.SiteMetadata, error) {
	v, ok := variant.Classify(pageURL).(variant.TeamFourStar)
	if !ok {
		return nil, fmt.Errorf("%w: not a TeamFourStar video page: %s", media.ErrUnsupportedURL, pageURL)
	}

	t.log.WithField("display_id", v.DisplayID).Debug("resolving video page")

	doc, err := fetchDocument(ctx, t.fetcher, pageURL, "Downloading webpage")
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", v.DisplayID, err)
	}

	meta, err := parseTeamFourStar(doc)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", v.DisplayID, err)
	}
	return meta, nil
}
