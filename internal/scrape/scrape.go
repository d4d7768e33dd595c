// Package scrape provides targeted extraction helpers over fetched pages:
// regexp search over raw text and selector lookups over parsed HTML.
package scrape

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/mo"

	"screenwave/internal/media"
)

// Search returns the first capture group of re in text.
// A missing match is a *media.FieldError naming field.
func Search(text string, re *regexp.Regexp, field string) (string, error) {
	v, ok := SearchOptional(text, re).Get()
	if !ok {
		return "", &media.FieldError{Field: field}
	}
	return v, nil
}

// SearchOptional is Search for soft fields.
func SearchOptional(text string, re *regexp.Regexp) mo.Option[string] {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return mo.None[string]()
	}
	return mo.Some(m[1])
}

// SearchGroups returns the named groups of the first match of re, or nil.
func SearchGroups(text string, re *regexp.Regexp) map[string]string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = m[i]
		}
	}
	return groups
}

// UnescapeSlashes turns JavaScript-escaped "\/" back into "/".
func UnescapeSlashes(s string) string {
	return strings.ReplaceAll(s, `\/`, "/")
}

// Text returns the cleaned text of the first element matching selector.
// An empty or missing element is a *media.FieldError naming field.
func Text(doc *goquery.Document, selector, field string) (string, error) {
	v, ok := TextOptional(doc, selector).Get()
	if !ok {
		return "", &media.FieldError{Field: field}
	}
	return v, nil
}

// TextOptional is Text for soft fields.
func TextOptional(doc *goquery.Document, selector string) mo.Option[string] {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return mo.None[string]()
	}
	text := CleanText(sel)
	if text == "" {
		return mo.None[string]()
	}
	return mo.Some(text)
}

// CleanText renders a selection as plain text: <br> and paragraph breaks
// become newlines, entities are decoded and surrounding space is trimmed.
func CleanText(sel *goquery.Selection) string {
	c := sel.Clone()
	c.Find("br").ReplaceWithHtml("\n")
	c.Find("p").Each(func(_ int, p *goquery.Selection) {
		p.AppendHtml("\n")
	})

	lines := strings.Split(c.Text(), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// OGImage returns the Open Graph preview image of a page, if any.
func OGImage(doc *goquery.Document) mo.Option[string] {
	for _, sel := range []string{`meta[property="og:image"]`, `meta[name="og:image"]`} {
		if v := strings.TrimSpace(doc.Find(sel).First().AttrOr("content", "")); v != "" {
			return mo.Some(v)
		}
	}
	return mo.None[string]()
}

// MonthNumber maps an English month name ("January".."December") to 1..12.
func MonthNumber(name string) (int, error) {
	for m := time.January; m <= time.December; m++ {
		if m.String() == name {
			return int(m), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown month name %q", media.ErrParse, name)
}
