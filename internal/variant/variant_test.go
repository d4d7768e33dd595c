package variant

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Variant
	}{
		{
			"cinemassacre article",
			"http://cinemassacre.com/2012/11/10/avgn-the-movie-trailer/",
			Cinemassacre{Year: "2012", Month: "11", Day: "10", DisplayID: "avgn-the-movie-trailer"},
		},
		{
			"cinemassacre without scheme or trailing slash",
			"www.cinemassacre.com/2013/10/02/the-mummys-hand-1940",
			Cinemassacre{Year: "2013", Month: "10", Day: "02", DisplayID: "the-mummys-hand-1940"},
		},
		{
			"cinemassacre with query",
			"http://cinemassacre.com/2013/10/02/the-mummys-hand-1940?ref=home",
			Cinemassacre{Year: "2013", Month: "10", Day: "02", DisplayID: "the-mummys-hand-1940"},
		},
		{
			"teamfourstar video",
			"http://teamfourstar.com/video/dragonball-z-abridged-episode-1/",
			TeamFourStar{DisplayID: "dragonball-z-abridged-episode-1"},
		},
		{
			"teamfourstar with www",
			"http://www.teamfourstar.com/video/tfs-plays-42",
			TeamFourStar{DisplayID: "tfs-plays-42"},
		},
		{
			"player embed",
			"http://player.screenwavemedia.com/play/play.php?playerdiv=videoarea&companiondiv=squareAd&id=Cinemassacre-19911",
			Generic{VideoID: "Cinemassacre-19911"},
		},
		{
			"player embed without scheme",
			"player.screenwavemedia.com/play/embed.php?id=Cinemassacre-521be8ef82b16",
			Generic{VideoID: "Cinemassacre-521be8ef82b16"},
		},
		{"unrelated host", "http://example.com/2012/11/10/foo/", NoMatch{}},
		{"cinemassacre bad date", "http://cinemassacre.com/12/11/10/foo/", NoMatch{}},
		{"teamfourstar uppercase", "http://teamfourstar.com/video/ABC/", NoMatch{}},
		{"player without id", "http://player.screenwavemedia.com/play/play.php?vid=1", NoMatch{}},
		{"empty", "", NoMatch{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.url)
			if got != tt.want {
				t.Errorf("Classify(%q) = %#v, want %#v", tt.url, got, tt.want)
			}
		})
	}
}

func TestGenericIDIsQueryValue(t *testing.T) {
	ids := []string{"Cinemassacre-19911", "TFS-0001", "a", "Cinemassacre-521be8ef82b16"}
	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			got, ok := Classify("http://player.screenwavemedia.com/play/play.php?playerdiv=x&id=" + id).(Generic)
			if !ok {
				t.Fatalf("expected Generic variant for id %q", id)
			}
			if got.VideoID != id {
				t.Errorf("VideoID = %q, want %q", got.VideoID, id)
			}
		})
	}
}

func TestUploadDate(t *testing.T) {
	v, ok := Classify("http://cinemassacre.com/2012/01/05/x/").(Cinemassacre)
	if !ok {
		t.Fatal("expected Cinemassacre variant")
	}
	if v.UploadDate() != "20120105" {
		t.Errorf("UploadDate() = %q, want 20120105", v.UploadDate())
	}
}

func TestIsSite(t *testing.T) {
	if !IsSite(Cinemassacre{}) || !IsSite(TeamFourStar{}) {
		t.Error("site variants should report IsSite")
	}
	if IsSite(Generic{}) || IsSite(NoMatch{}) {
		t.Error("non-site variants should not report IsSite")
	}
}
