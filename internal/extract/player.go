package extract

import (
	"context"
	"fmt"
	"regexp"

	"github.com/samber/mo"
	"github.com/sirupsen/logrus"

	"screenwave/internal/httputil"
	"screenwave/internal/media"
	"screenwave/internal/scrape"
	"screenwave/internal/variant"
)

// The player page configures jwplayer with a JS object literal whose keys are
// single-quoted and whose values are double-quoted with escaped slashes.
var (
	vidTitlePattern = regexp.MustCompile(`'vidtitle'\s*:\s*"([^']+)"`)
	vidURLPattern   = regexp.MustCompile(`'vidurl'\s*:\s*"([^']+)"`)
	pageURLPattern  = regexp.MustCompile(`'pageurl'\s*:\s*"([^']+)"`)
)

// Player extracts embed descriptors from player.screenwavemedia.com pages.
type Player struct {
	fetcher httputil.Fetcher
	log     *logrus.Entry
}

// NewPlayer creates a Player extractor.
func NewPlayer(fetcher httputil.Fetcher, log *logrus.Entry) *Player {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Player{
		fetcher: fetcher,
		log:     log.WithField("component", "player"),
	}
}

// Extract fetches the player page behind embedURL and reads its configuration.
// URLs that are not player URLs are rejected before any request is made.
func (p *Player) Extract(ctx context.Context, embedURL string) (*media.EmbedDescriptor, error) {
	v, ok := variant.Classify(embedURL).(variant.Generic)
	if !ok {
		return nil, fmt.Errorf("%w: can't extract embed url and video id from %s", media.ErrExtraction, embedURL)
	}

	page, err := p.fetcher.Fetch(ctx, embedURL, "Downloading player webpage")
	if err != nil {
		return nil, fmt.Errorf("getting player %s: %w", v.VideoID, err)
	}

	desc, err := parsePlayer(page, v.VideoID)
	if err != nil {
		return nil, fmt.Errorf("parsing player %s: %w", v.VideoID, err)
	}

	p.log.WithFields(logrus.Fields{
		"video_id": desc.VideoID,
		"hint":     fmt.Sprintf("%T", desc.Hint),
	}).Debug("player resolved")

	return desc, nil
}

// parsePlayer reads the descriptor fields out of a player page.
func parsePlayer(page, videoID string) (*media.EmbedDescriptor, error) {
	title, err := scrape.Search(page, vidTitlePattern, "vidtitle")
	if err != nil {
		return nil, err
	}
	rawURL, err := scrape.Search(page, vidURLPattern, "vidurl")
	if err != nil {
		return nil, err
	}
	origin := mo.None[string]()
	if u, ok := scrape.SearchOptional(page, pageURLPattern).Get(); ok {
		origin = mo.Some(scrape.UnescapeSlashes(u))
	}

	return &media.EmbedDescriptor{
		VideoID:       videoID,
		Title:         scrape.UnescapeSlashes(title),
		RawMediaURL:   scrape.UnescapeSlashes(rawURL),
		OriginPageURL: origin,
		Hint:          discoverHint(page, videoID),
	}, nil
}
