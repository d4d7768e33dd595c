// Package manifest fetches the SMIL videolist behind a Screenwave player
// and normalizes its entries into ranked formats.
package manifest

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"

	"screenwave/internal/httputil"
	"screenwave/internal/media"
)

var (
	videoPath   = xmlpath.MustCompile("//video")
	srcPath     = xmlpath.MustCompile("@src")
	widthPath   = xmlpath.MustCompile("@width")
	heightPath  = xmlpath.MustCompile("@height")
	bitratePath = xmlpath.MustCompile("@system-bitrate")
)

// Entry is one <video> element of a SMIL videolist, attributes as found.
type Entry struct {
	Src           string // "protocol:path", e.g. "mp4:Cinemassacre-19911_480p.mp4"
	Width         mo.Option[int]
	Height        mo.Option[int]
	SystemBitrate mo.Option[int] // bits per second
}

// Manifest is the outcome of manifest resolution. URL is empty and Entries
// nil when the player only exposed a raw media URL.
type Manifest struct {
	URL     string
	Entries []Entry
}

// Resolver fetches SMIL videolists.
type Resolver struct {
	fetcher httputil.Fetcher
	log     *logrus.Entry
}

// NewResolver creates a manifest Resolver.
func NewResolver(fetcher httputil.Fetcher, log *logrus.Entry) *Resolver {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Resolver{
		fetcher: fetcher,
		log:     log.WithField("component", "manifest"),
	}
}

// ManifestURL builds the Wowza SMIL URL for a media id on a server.
func ManifestURL(server, mediaID string) string {
	return fmt.Sprintf("http://%s/vod/smil:%s.smil/jwplayer.smil", server, mediaID)
}

// Resolve fetches and parses the videolist the descriptor's hint points to.
// NoHint performs no request.
func (r *Resolver) Resolve(ctx context.Context, desc *media.EmbedDescriptor) (*Manifest, error) {
	var url string
	switch h := desc.Hint.(type) {
	case media.ServerHint:
		url = ManifestURL(h.Server, h.MediaID)
	case media.DirectHint:
		url = h.URL
	case media.NoHint, nil:
		return &Manifest{}, nil
	default:
		return nil, fmt.Errorf("unknown manifest hint %T", h)
	}

	root, err := r.fetcher.FetchXML(ctx, url, "Downloading videolist XML")
	if err != nil {
		return nil, fmt.Errorf("getting videolist for %s: %w", desc.VideoID, err)
	}

	entries := parseEntries(root)
	r.log.WithFields(logrus.Fields{"url": url, "entries": len(entries)}).Debug("videolist parsed")

	return &Manifest{URL: url, Entries: entries}, nil
}

// parseEntries collects every <video> element in document order.
func parseEntries(root *xmlpath.Node) []Entry {
	var entries []Entry
	iter := videoPath.Iter(root)
	for iter.Next() {
		n := iter.Node()
		src, _ := srcPath.String(n)
		entries = append(entries, Entry{
			Src:           strings.TrimSpace(src),
			Width:         intAttr(widthPath, n),
			Height:        intAttr(heightPath, n),
			SystemBitrate: intAttr(bitratePath, n),
		})
	}
	return entries
}

// intAttr reads an integer attribute. Missing, malformed and zero values are absent.
func intAttr(p *xmlpath.Path, n *xmlpath.Node) mo.Option[int] {
	s, ok := p.String(n)
	if !ok {
		return mo.None[int]()
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v == 0 {
		return mo.None[int]()
	}
	return mo.Some(v)
}
