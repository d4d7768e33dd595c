package player

import "screenwave/internal/media"

// VLC implements the Player interface for VLC media player.
type VLC struct{}

func (v *VLC) Name() string    { return "vlc" }
func (v *VLC) Available() bool { return available("vlc") }

// Play launches VLC and exits it when playback ends.
func (v *VLC) Play(format media.FormatVariant, title string) error {
	return run("vlc", vlcArgs(format, title))
}

func vlcArgs(format media.FormatVariant, title string) []string {
	args := []string{
		format.URL,
		"--meta-title", title,
		"--play-and-exit",
	}
	if format.AudioOnly {
		args = append(args, "--no-video")
	}
	return args
}
