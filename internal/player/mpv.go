package player

import "screenwave/internal/media"

// MPV implements the Player interface for mpv.
type MPV struct{}

func (m *MPV) Name() string    { return "mpv" }
func (m *MPV) Available() bool { return available("mpv") }

// Play launches mpv on the format URL.
func (m *MPV) Play(format media.FormatVariant, title string) error {
	return run("mpv", mpvArgs(format, title))
}

// mpvArgs builds mpv-style arguments, shared with players that accept them.
func mpvArgs(format media.FormatVariant, title string) []string {
	args := []string{
		format.URL,
		"--force-media-title=" + title,
		"--really-quiet",
	}
	if format.AudioOnly {
		args = append(args, "--force-window=no")
	}
	return args
}
