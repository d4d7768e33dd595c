package resolve

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screenwave/internal/httputil/httputiltest"
	"screenwave/internal/media"
)

func TestResolveAllKeepsInputOrder(t *testing.T) {
	pages := map[string]string{}
	var urls []string
	for i := 0; i < 8; i++ {
		u := fmt.Sprintf("http://player.screenwavemedia.com/play/embed.php?id=plain-%d", i)
		pages[u] = fixture(t, "player_plain.html")
		urls = append(urls, u)
	}
	urls = append(urls, "http://example.com/nope")

	out := New(httputiltest.New(pages), nil).ResolveAll(context.Background(), urls, 3)
	require.Len(t, out, len(urls))

	for i, o := range out[:8] {
		require.NoError(t, o.Err, o.URL)
		assert.Equal(t, urls[i], o.URL)
		assert.Equal(t, fmt.Sprintf("plain-%d", i), o.Result.ID)
	}
	assert.ErrorIs(t, out[8].Err, media.ErrUnsupportedURL)
	assert.Nil(t, out[8].Result)
}

func TestResolveAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := httputiltest.New(nil)
	out := New(f, nil).ResolveAll(ctx, []string{"http://player.screenwavemedia.com/play/embed.php?id=a"}, 0)

	require.Len(t, out, 1)
	assert.ErrorIs(t, out[0].Err, context.Canceled)
	assert.Empty(t, f.Calls())
}
