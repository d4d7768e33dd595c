// Package variant classifies URLs into the closed set of shapes screenwave
// knows how to resolve.
package variant

import "regexp"

// Variant is one of Generic, Cinemassacre, TeamFourStar or NoMatch.
type Variant interface {
	variant()
}

// Generic is a Screenwave Media player URL.
type Generic struct {
	VideoID string
}

// Cinemassacre is a dated Cinemassacre article URL.
type Cinemassacre struct {
	Year      string // 4 digits
	Month     string // 2 digits
	Day       string // 2 digits
	DisplayID string
}

// UploadDate returns the date captured from the URL as YYYYMMDD.
func (c Cinemassacre) UploadDate() string {
	return c.Year + c.Month + c.Day
}

// TeamFourStar is a TeamFourStar video page URL.
type TeamFourStar struct {
	DisplayID string
}

// NoMatch is returned for anything else.
type NoMatch struct{}

func (Generic) variant()      {}
func (Cinemassacre) variant() {}
func (TeamFourStar) variant() {}
func (NoMatch) variant()      {}

// urlPattern is anchored at the start only, so trailing query strings and
// fragments on site URLs are tolerated.
var urlPattern = regexp.MustCompile(`^(?:https?://)?(?:` +
	`(?P<generic>player\.screenwavemedia\.com/play/[a-zA-Z]+\.php\?[^"]*\bid=(?P<video_id>.+))` +
	`|(?P<cinemassacre>(?:www\.)?cinemassacre\.com/(?P<cm_year>[0-9]{4})/(?P<cm_month>[0-9]{2})/(?P<cm_day>[0-9]{2})/(?P<cm_display_id>[^?#/]+))` +
	`|(?P<teamfourstar>(?:www\.)?teamfourstar\.com/video/(?P<tfs_display_id>[a-z0-9\-]+)/?)` +
	`)`)

// Classify matches rawURL against the known variants. It performs no I/O.
func Classify(rawURL string) Variant {
	m := urlPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return NoMatch{}
	}

	groups := make(map[string]string, len(m))
	for i, name := range urlPattern.SubexpNames() {
		if name != "" {
			groups[name] = m[i]
		}
	}

	switch {
	case groups["generic"] != "":
		return Generic{VideoID: groups["video_id"]}
	case groups["cinemassacre"] != "":
		return Cinemassacre{
			Year:      groups["cm_year"],
			Month:     groups["cm_month"],
			Day:       groups["cm_day"],
			DisplayID: groups["cm_display_id"],
		}
	case groups["teamfourstar"] != "":
		return TeamFourStar{DisplayID: groups["tfs_display_id"]}
	default:
		return NoMatch{}
	}
}

// IsSite reports whether v is one of the front-end site variants.
func IsSite(v Variant) bool {
	switch v.(type) {
	case Cinemassacre, TeamFourStar:
		return true
	default:
		return false
	}
}
