package provider

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/mo"

	"screenwave/internal/media"
	"screenwave/internal/scrape"
	"screenwave/internal/variant"
)

var (
	// embedSrcPattern matches the Screenwave player URL in a src attribute.
	embedSrcPattern = regexp.MustCompile(`^http://player\.screenwavemedia\.com/play/[a-zA-Z]+\.php\?[^"]*\bid=.+`)

	// heroDatePattern matches dates like "March 7, 2014".
	heroDatePattern = regexp.MustCompile(`^(?P<month>[A-Z][a-z]+) (?P<day>\d+), (?P<year>\d+)`)
)

// parseCinemassacre extracts article metadata. Description and thumbnail are soft.
func parseCinemassacre(doc *goquery.Document, v variant.Cinemassacre) (*media.SiteMetadata, error) {
	embedURL, err := findEmbedURL(doc)
	if err != nil {
		return nil, err
	}

	title, err := documentTitle(doc)
	if err != nil {
		return nil, err
	}

	return &media.SiteMetadata{
		Title:       title,
		Description: scrape.TextOptional(doc, "div.entry-content"),
		UploadDate:  v.UploadDate(),
		Thumbnail:   scrape.OGImage(doc),
		EmbedURL:    embedURL,
	}, nil
}

// parseTeamFourStar extracts video page metadata. Only the thumbnail is soft.
func parseTeamFourStar(doc *goquery.Document) (*media.SiteMetadata, error) {
	embedURL, err := findEmbedURL(doc)
	if err != nil {
		return nil, err
	}

	title, err := scrape.Text(doc, "div.heroheadingtitle", "title")
	if err != nil {
		return nil, err
	}

	rawDate, err := scrape.Text(doc, "div.heroheadingdate", "date")
	if err != nil {
		return nil, err
	}
	date, err := parseHeroDate(rawDate)
	if err != nil {
		return nil, err
	}

	description, err := scrape.Text(doc, "div.postcontent", "description")
	if err != nil {
		return nil, err
	}

	return &media.SiteMetadata{
		Title:       title,
		Description: mo.Some(description),
		UploadDate:  date,
		Thumbnail:   scrape.OGImage(doc),
		EmbedURL:    embedURL,
	}, nil
}

// findEmbedURL returns the first src attribute pointing at the Screenwave player.
// goquery decodes entities, so "&amp;" in the markup comes back as "&".
func findEmbedURL(doc *goquery.Document) (string, error) {
	var embedURL string
	doc.Find("[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src := strings.TrimSpace(s.AttrOr("src", ""))
		if embedSrcPattern.MatchString(src) {
			embedURL = src
			return false
		}
		return true
	})

	if embedURL == "" {
		return "", &media.FieldError{Field: "embed url"}
	}
	return embedURL, nil
}

// documentTitle returns the <title> text before the "|" site suffix.
func documentTitle(doc *goquery.Document) (string, error) {
	full := doc.Find("title").First().Text()
	before, _, found := strings.Cut(full, "|")
	title := strings.TrimSpace(before)
	if !found || title == "" {
		return "", &media.FieldError{Field: "title"}
	}
	return title, nil
}

// parseHeroDate converts "Month Day, Year" into YYYYMMDD.
func parseHeroDate(s string) (string, error) {
	g := scrape.SearchGroups(strings.TrimSpace(s), heroDatePattern)
	if g == nil {
		return "", fmt.Errorf("%w: unrecognized date %q", media.ErrParse, s)
	}

	month, err := scrape.MonthNumber(g["month"])
	if err != nil {
		return "", err
	}
	day, err := strconv.Atoi(g["day"])
	if err != nil {
		return "", fmt.Errorf("%w: day in %q: %v", media.ErrParse, s, err)
	}
	year, err := strconv.Atoi(g["year"])
	if err != nil {
		return "", fmt.Errorf("%w: year in %q: %v", media.ErrParse, s, err)
	}

	return fmt.Sprintf("%04d%02d%02d", year, month, day), nil
}
