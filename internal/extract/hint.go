package extract

import (
	"regexp"

	"screenwave/internal/media"
	"screenwave/internal/scrape"
)

var (
	videoServerPattern = regexp.MustCompile(`'videoserver'\s*:\s*'(?P<videoserver>[^']+)'`)
	vidIDPattern       = regexp.MustCompile(`'vidid'\s*:\s*"(?P<vidid>[^']+)"`)
	smilFilePattern    = regexp.MustCompile(`file\s*:\s*'(?P<smil>http.+?/jwplayer\.smil)'`)
)

// hintRule pairs a pattern with the hint it produces when the pattern matches.
type hintRule struct {
	re    *regexp.Regexp
	build func(match, page, videoID string) media.ManifestHint
}

// hintRules are tried in order; the first match wins.
var hintRules = []hintRule{
	{
		re: videoServerPattern,
		build: func(server, page, videoID string) media.ManifestHint {
			mediaID := scrape.SearchOptional(page, vidIDPattern).OrElse(videoID)
			return media.ServerHint{Server: server, MediaID: mediaID}
		},
	},
	{
		re: smilFilePattern,
		build: func(url, _, _ string) media.ManifestHint {
			return media.DirectHint{URL: url}
		},
	},
}

// discoverHint works out where the SMIL videolist for a player page lives.
func discoverHint(page, videoID string) media.ManifestHint {
	for _, rule := range hintRules {
		if m, ok := scrape.SearchOptional(page, rule.re).Get(); ok {
			return rule.build(m, page, videoID)
		}
	}
	return media.NoHint{}
}
