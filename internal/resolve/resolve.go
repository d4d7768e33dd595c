// Package resolve drives a URL through classification, site scraping,
// player extraction and manifest expansion, and merges the results.
package resolve

import (
	"context"
	"fmt"

	"github.com/samber/mo"
	"github.com/sirupsen/logrus"

	"screenwave/internal/extract"
	"screenwave/internal/httputil"
	"screenwave/internal/manifest"
	"screenwave/internal/media"
	"screenwave/internal/provider"
	"screenwave/internal/variant"
)

// State is a step of a single resolution.
type State int

const (
	Unresolved State = iota
	EmbedResolved
	SiteResolved
	Merged
	Failed
)

func (s State) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case EmbedResolved:
		return "embed-resolved"
	case SiteResolved:
		return "site-resolved"
	case Merged:
		return "merged"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Resolver turns any supported URL into a media.VideoResult. It keeps no
// per-request state and is safe for concurrent use.
type Resolver struct {
	embeds    extract.Extractor
	manifests *manifest.Resolver
	sites     *provider.Sites
	log       *logrus.Entry
}

// New wires every stage to the same fetcher.
func New(fetcher httputil.Fetcher, log *logrus.Entry) *Resolver {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Resolver{
		embeds:    extract.New(fetcher, log),
		manifests: manifest.NewResolver(fetcher, log),
		sites:     provider.NewSites(fetcher, log),
		log:       log.WithField("component", "resolve"),
	}
}

// run tracks the state of one resolution.
type run struct {
	state State
	log   *logrus.Entry
}

func (r *run) to(s State) {
	r.log.WithFields(logrus.Fields{"from": r.state, "to": s}).Debug("state change")
	r.state = s
}

// Resolve resolves rawURL. URLs that match no known variant fail with
// media.ErrUnsupportedURL before any request is made.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (*media.VideoResult, error) {
	rn := &run{state: Unresolved, log: r.log.WithField("url", rawURL)}

	result, err := r.resolve(ctx, rn, rawURL)
	if err != nil {
		rn.to(Failed)
		return nil, err
	}

	rn.to(Merged)
	return result, nil
}

func (r *Resolver) resolve(ctx context.Context, rn *run, rawURL string) (*media.VideoResult, error) {
	var (
		base *media.VideoResult
		site *media.SiteMetadata
	)

	switch v := variant.Classify(rawURL).(type) {
	case variant.Generic:
		desc, result, err := r.resolvePlayer(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		base = result
		rn.to(EmbedResolved)

		if origin, ok := desc.OriginPageURL.Get(); ok {
			if ov := variant.Classify(origin); variant.IsSite(ov) {
				s, _ := r.sites.For(ov)
				site, err = s.Resolve(ctx, origin)
				if err != nil {
					return nil, fmt.Errorf("origin page %s: %w", origin, err)
				}
				rn.to(SiteResolved)
			} else {
				rn.log.WithField("origin", origin).Debug("origin page not a known site, skipping metadata")
			}
		}

	case variant.Cinemassacre, variant.TeamFourStar:
		s, _ := r.sites.For(v)
		meta, err := s.Resolve(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}
		site = meta
		rn.to(SiteResolved)

		_, result, err := r.resolvePlayer(ctx, site.EmbedURL)
		if err != nil {
			return nil, err
		}
		base = result
		rn.to(EmbedResolved)

	default:
		return nil, fmt.Errorf("%w: %s", media.ErrUnsupportedURL, rawURL)
	}

	if base == nil {
		return nil, media.ErrResolution
	}
	if site != nil {
		merge(base, site)
	}
	base.WebpageURL = rawURL
	return base, nil
}

// resolvePlayer runs the player page through extraction, manifest lookup and
// format normalization.
func (r *Resolver) resolvePlayer(ctx context.Context, embedURL string) (*media.EmbedDescriptor, *media.VideoResult, error) {
	desc, err := r.embeds.Extract(ctx, embedURL)
	if err != nil {
		return nil, nil, err
	}

	m, err := r.manifests.Resolve(ctx, desc)
	if err != nil {
		return nil, nil, err
	}

	return desc, &media.VideoResult{
		ID:      desc.VideoID,
		Title:   desc.Title,
		Formats: manifest.Normalize(m.Entries, desc.RawMediaURL),
	}, nil
}

// merge overlays site metadata. The site title always wins; optional fields
// only replace when the site has them. ID and formats are never touched.
func merge(base *media.VideoResult, site *media.SiteMetadata) {
	base.Title = site.Title
	if site.Description.IsPresent() {
		base.Description = site.Description
	}
	if site.UploadDate != "" {
		base.UploadDate = mo.Some(site.UploadDate)
	}
	if site.Thumbnail.IsPresent() {
		base.Thumbnail = site.Thumbnail
	}
}
