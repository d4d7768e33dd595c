package player

import "screenwave/internal/media"

// Generic implements the Player interface for players like iina and celluloid
// that accept mpv-compatible arguments.
type Generic struct {
	name string
}

func (g *Generic) Name() string    { return g.name }
func (g *Generic) Available() bool { return available(g.name) }

// Play launches the player with mpv-style flags.
func (g *Generic) Play(format media.FormatVariant, title string) error {
	return run(g.name, mpvArgs(format, title))
}
