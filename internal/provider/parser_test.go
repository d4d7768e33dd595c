package provider

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"screenwave/internal/media"
	"screenwave/internal/variant"
)

func loadTestDoc(t *testing.T, filename string) *goquery.Document {
	t.Helper()
	data, err := os.ReadFile("testdata/" + filename)
	if err != nil {
		t.Fatalf("reading test fixture %s: %v", filename, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("parsing test fixture %s: %v", filename, err)
	}
	return doc
}

var avgnTrailer = variant.Cinemassacre{Year: "2012", Month: "11", Day: "10", DisplayID: "avgn-the-movie-trailer"}

func TestParseCinemassacre(t *testing.T) {
	doc := loadTestDoc(t, "cinemassacre_article.html")
	meta, err := parseCinemassacre(doc, avgnTrailer)
	if err != nil {
		t.Fatalf("parseCinemassacre() error: %v", err)
	}

	if meta.Title != "“Angry Video Game Nerd: The Movie” – Trailer" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.UploadDate != "20121110" {
		t.Errorf("UploadDate = %q, want 20121110", meta.UploadDate)
	}
	wantEmbed := "http://player.screenwavemedia.com/play/play.php?playerdiv=videoarea&companiondiv=squareAd&id=Cinemassacre-19911"
	if meta.EmbedURL != wantEmbed {
		t.Errorf("EmbedURL = %q, want %q", meta.EmbedURL, wantEmbed)
	}
	wantDesc := "The Angry Video Game Nerd: The Movie.\nComing 2014.\nDirected by James Rolfe & Kevin Finn."
	if got := meta.Description.OrEmpty(); got != wantDesc {
		t.Errorf("Description = %q, want %q", got, wantDesc)
	}
	if got := meta.Thumbnail.OrEmpty(); got != "http://cinemassacre.com/wp-content/uploads/2012/11/AVGNMovieTrailer.jpg" {
		t.Errorf("Thumbnail = %q", got)
	}
}

func TestParseCinemassacreSoftFields(t *testing.T) {
	doc := loadTestDoc(t, "cinemassacre_no_description.html")
	v := variant.Cinemassacre{Year: "2013", Month: "10", Day: "02", DisplayID: "the-mummys-hand-1940"}

	meta, err := parseCinemassacre(doc, v)
	if err != nil {
		t.Fatalf("missing description should not fail: %v", err)
	}
	if meta.Description.IsPresent() {
		t.Errorf("Description should be absent, got %q", meta.Description.OrEmpty())
	}
	if meta.Thumbnail.IsPresent() {
		t.Errorf("Thumbnail should be absent, got %q", meta.Thumbnail.OrEmpty())
	}
	if meta.Title != "The Mummy’s Hand (1940)" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.UploadDate != "20131002" {
		t.Errorf("UploadDate = %q, want 20131002", meta.UploadDate)
	}
	if meta.EmbedURL != "http://player.screenwavemedia.com/play/embed.php?id=Cinemassacre-521be8ef82b16" {
		t.Errorf("EmbedURL = %q", meta.EmbedURL)
	}
}

func TestParseCinemassacreNoEmbed(t *testing.T) {
	doc := loadTestDoc(t, "cinemassacre_no_embed.html")
	_, err := parseCinemassacre(doc, avgnTrailer)
	if !errors.Is(err, media.ErrExtraction) {
		t.Fatalf("error = %v, want ErrExtraction", err)
	}
	var fe *media.FieldError
	if !errors.As(err, &fe) || fe.Field != "embed url" {
		t.Errorf("error should name the embed url field, got %v", err)
	}
}

func TestParseTeamFourStar(t *testing.T) {
	doc := loadTestDoc(t, "teamfourstar_video.html")
	meta, err := parseTeamFourStar(doc)
	if err != nil {
		t.Fatalf("parseTeamFourStar() error: %v", err)
	}

	if meta.Title != "DragonBall Z Abridged: Episode 1" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.UploadDate != "20140307" {
		t.Errorf("UploadDate = %q, want 20140307", meta.UploadDate)
	}
	if got := meta.Description.OrEmpty(); got != "The one that started it all." {
		t.Errorf("Description = %q", got)
	}
	if meta.EmbedURL != "http://player.screenwavemedia.com/play/play.php?playerdiv=videoarea&id=TFS-0001" {
		t.Errorf("EmbedURL = %q", meta.EmbedURL)
	}
	if !meta.Thumbnail.IsPresent() {
		t.Error("Thumbnail should be present")
	}
}

func TestParseTeamFourStarBadMonth(t *testing.T) {
	doc := loadTestDoc(t, "teamfourstar_bad_month.html")
	_, err := parseTeamFourStar(doc)
	if !errors.Is(err, media.ErrParse) {
		t.Fatalf("error = %v, want ErrParse", err)
	}
}

func TestParseTeamFourStarDescriptionRequired(t *testing.T) {
	doc := loadTestDoc(t, "teamfourstar_no_description.html")
	_, err := parseTeamFourStar(doc)
	if !errors.Is(err, media.ErrExtraction) {
		t.Fatalf("error = %v, want ErrExtraction", err)
	}
	if !strings.Contains(err.Error(), "description") {
		t.Errorf("error %q should name the description field", err)
	}
}

func TestParseHeroDate(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"March 7, 2014", "20140307", false},
		{"December 25, 2013", "20131225", false},
		{"January 1, 99", "00990101", false},
		{"  May 30, 2015 ", "20150530", false},
		{"Marchember 7, 2014", "", true},
		{"7 March 2014", "", true},
		{"march 7, 2014", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseHeroDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHeroDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, media.ErrParse) {
				t.Errorf("error %v should match ErrParse", err)
			}
			if got != tt.want {
				t.Errorf("parseHeroDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDocumentTitle(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		want    string
		wantErr bool
	}{
		{"with suffix", "<title>Foo | Site</title>", "Foo", false},
		{"two separators", "<title>A | B | Site</title>", "A", false},
		{"no separator", "<title>Foo</title>", "", true},
		{"empty before separator", "<title> | Site</title>", "", true},
		{"missing", "<p>x</p>", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(tt.html))
			if err != nil {
				t.Fatal(err)
			}
			got, err := documentTitle(doc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("documentTitle() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("documentTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
