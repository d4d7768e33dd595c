package manifest

import (
	"context"
	"os"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screenwave/internal/httputil/httputiltest"
	"screenwave/internal/media"
)

const rawMediaURL = "http://video.screenwavemedia.com/Cinemassacre/Cinemassacre-19911_480p.mp4"

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(data)
}

func TestManifestURL(t *testing.T) {
	assert.Equal(t,
		"http://vod.screenwavemedia.com:1935/vod/smil:Cinemassacre-19911.smil/jwplayer.smil",
		ManifestURL("vod.screenwavemedia.com:1935", "Cinemassacre-19911"))
}

func TestResolveServerHint(t *testing.T) {
	url := ManifestURL("vod.screenwavemedia.com:1935", "Cinemassacre-19911-v2")
	f := httputiltest.New(map[string]string{url: loadFixture(t, "videolist.xml")})

	m, err := NewResolver(f, nil).Resolve(context.Background(), &media.EmbedDescriptor{
		VideoID:     "Cinemassacre-19911",
		RawMediaURL: rawMediaURL,
		Hint:        media.ServerHint{Server: "vod.screenwavemedia.com:1935", MediaID: "Cinemassacre-19911-v2"},
	})
	require.NoError(t, err)

	assert.Equal(t, url, m.URL)
	assert.Equal(t, []string{url}, f.Calls())
	require.Len(t, m.Entries, 4)
	assert.Equal(t, Entry{
		Src:           "mp4:Cinemassacre-19911_480p.mp4",
		Width:         mo.Some(854),
		Height:        mo.Some(480),
		SystemBitrate: mo.Some(1200000),
	}, m.Entries[0])
	assert.False(t, m.Entries[2].Width.IsPresent())
}

func TestResolveDirectHint(t *testing.T) {
	url := "http://vod.screenwavemedia.com:1935/vod/smil:TFS-0001.smil/jwplayer.smil"
	f := httputiltest.New(map[string]string{url: loadFixture(t, "videolist_lenient.xml")})

	m, err := NewResolver(f, nil).Resolve(context.Background(), &media.EmbedDescriptor{
		VideoID: "TFS-0001",
		Hint:    media.DirectHint{URL: url},
	})
	require.NoError(t, err)
	require.Len(t, m.Entries, 3)

	sd := m.Entries[0]
	assert.False(t, sd.Width.IsPresent(), "zero width is absent")
	assert.False(t, sd.SystemBitrate.IsPresent(), "malformed bitrate is absent")
	assert.Equal(t, mo.Some(360), sd.Height)
	assert.Empty(t, m.Entries[2].Src)
}

func TestResolveNoHintMakesNoRequest(t *testing.T) {
	f := httputiltest.New(nil)

	m, err := NewResolver(f, nil).Resolve(context.Background(), &media.EmbedDescriptor{
		VideoID: "plain",
		Hint:    media.NoHint{},
	})
	require.NoError(t, err)
	assert.Empty(t, m.URL)
	assert.Nil(t, m.Entries)
	assert.Empty(t, f.Calls())
}

func TestResolveFetchError(t *testing.T) {
	_, err := NewResolver(httputiltest.New(nil), nil).Resolve(context.Background(), &media.EmbedDescriptor{
		VideoID: "gone",
		Hint:    media.ServerHint{Server: "srv", MediaID: "gone"},
	})
	assert.ErrorIs(t, err, media.ErrFetch)
}

func TestResolveMalformedXML(t *testing.T) {
	url := ManifestURL("srv", "bad")
	f := httputiltest.New(map[string]string{url: "<smil><video src="})

	_, err := NewResolver(f, nil).Resolve(context.Background(), &media.EmbedDescriptor{
		VideoID: "bad",
		Hint:    media.ServerHint{Server: "srv", MediaID: "bad"},
	})
	assert.Error(t, err)
}

func TestManifestURLDistinctIDs(t *testing.T) {
	ids := []string{"Cinemassacre-19911", "Cinemassacre-1991", "Cinemassacre-19911-v2", "TFS-0001", "a.smil", "a"}
	seen := map[string]string{}
	for _, id := range ids {
		url := ManifestURL("vod.screenwavemedia.com:1935", id)
		if prev, dup := seen[url]; dup {
			t.Errorf("ids %q and %q share manifest url %s", prev, id, url)
		}
		seen[url] = id
	}
}
