// Package extract resolves Screenwave Media player URLs into embed
// descriptors by scraping the player's inline configuration.
package extract

import (
	"context"

	"github.com/sirupsen/logrus"

	"screenwave/internal/httputil"
	"screenwave/internal/media"
)

// Extractor resolves player URLs into embed descriptors.
type Extractor interface {
	Extract(ctx context.Context, embedURL string) (*media.EmbedDescriptor, error)
}

// New returns the Screenwave player extractor.
func New(fetcher httputil.Fetcher, log *logrus.Entry) Extractor {
	return NewPlayer(fetcher, log)
}
