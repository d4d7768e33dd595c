package manifest

import (
	"path"
	"sort"
	"strings"

	"github.com/samber/mo"

	"screenwave/internal/media"
)

// Normalize turns videolist entries into formats, best first. Entries are
// resolved against the directory of rawMediaURL. When no entry has a src,
// the raw media URL itself is the only format.
func Normalize(entries []Entry, rawMediaURL string) []media.FormatVariant {
	base := rawMediaURL[:strings.LastIndex(rawMediaURL, "/")+1]

	var formats []media.FormatVariant
	for _, e := range entries {
		if e.Src == "" {
			continue
		}
		rel := relativePath(e.Src)

		bitrate := mo.None[int]()
		if bps, ok := e.SystemBitrate.Get(); ok {
			bitrate = mo.Some(bps / 1000)
		}

		formats = append(formats, media.FormatVariant{
			URL:         base + rel,
			FormatID:    formatID(rel),
			BitrateKbps: bitrate,
			Width:       e.Width,
			Height:      e.Height,
			AudioOnly:   !e.Width.IsPresent() && !e.Height.IsPresent(),
		})
	}

	if len(formats) == 0 {
		return []media.FormatVariant{{URL: rawMediaURL}}
	}

	sortFormats(formats)
	return formats
}

// relativePath strips the "mp4:" style protocol prefix from a SMIL src.
func relativePath(src string) string {
	if _, after, found := strings.Cut(src, ":"); found {
		return after
	}
	return src
}

// formatID is the quality label at the end of the file name,
// e.g. "Cinemassacre-19911_480p.mp4" -> "480p".
func formatID(rel string) string {
	name := path.Base(rel)
	stem := strings.TrimSuffix(name, path.Ext(name))
	return stem[strings.LastIndex(stem, "_")+1:]
}

// sortFormats orders best first: video before audio-only, then height,
// width and bitrate. Absent values rank below any present one and equal
// formats keep their manifest order.
func sortFormats(formats []media.FormatVariant) {
	sort.SliceStable(formats, func(i, j int) bool {
		a, b := rank(formats[i]), rank(formats[j])
		for k := range a {
			if a[k] != b[k] {
				return a[k] > b[k]
			}
		}
		return false
	})
}

func rank(f media.FormatVariant) [4]int {
	video := 1
	if f.AudioOnly {
		video = 0
	}
	return [4]int{video, f.Height.OrElse(-1), f.Width.OrElse(-1), f.BitrateKbps.OrElse(-1)}
}
