// Package media defines shared types for the screenwave resolver.
package media

import (
	"time"

	"github.com/samber/mo"
)

// ManifestHint tells the manifest resolver where the SMIL videolist lives.
// It is one of ServerHint, DirectHint or NoHint.
type ManifestHint interface {
	manifestHint()
}

// ServerHint names a streaming server and the media id it serves.
type ServerHint struct {
	Server  string
	MediaID string
}

// DirectHint carries a complete manifest URL found in the player page.
type DirectHint struct {
	URL string
}

// NoHint means the player page only exposes a single raw media URL.
type NoHint struct{}

func (ServerHint) manifestHint() {}
func (DirectHint) manifestHint() {}
func (NoHint) manifestHint()     {}

// EmbedDescriptor is what the Screenwave player page tells us about a video.
type EmbedDescriptor struct {
	VideoID       string
	Title         string
	RawMediaURL   string
	OriginPageURL mo.Option[string] // front-end page embedding the player
	Hint          ManifestHint
}

// FormatVariant is one playable quality of a video.
type FormatVariant struct {
	URL         string         `json:"url"`
	FormatID    string         `json:"format_id,omitempty"`
	BitrateKbps mo.Option[int] `json:"bitrate_kbps"`
	Width       mo.Option[int] `json:"width"`
	Height      mo.Option[int] `json:"height"`
	AudioOnly   bool           `json:"audio_only"`
}

// VCodec mirrors the usual "none" marker for formats without video.
func (f FormatVariant) VCodec() string {
	if f.AudioOnly {
		return "none"
	}
	return ""
}

// SiteMetadata is scraped from a Cinemassacre or TeamFourStar page.
type SiteMetadata struct {
	Title       string
	Description mo.Option[string]
	UploadDate  string // YYYYMMDD
	Thumbnail   mo.Option[string]
	EmbedURL    string
}

// VideoResult is the merged output of a resolution.
type VideoResult struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Formats     []FormatVariant   `json:"formats"`
	Description mo.Option[string] `json:"description"`
	UploadDate  mo.Option[string] `json:"upload_date"`
	Thumbnail   mo.Option[string] `json:"thumbnail"`
	WebpageURL  string            `json:"webpage_url"`
}

// HistoryEntry represents one previously resolved URL.
type HistoryEntry struct {
	URL        string
	ID         string
	Title      string
	UploadDate string
	Formats    int
	ResolvedAt time.Time
}
