// Package player launches an external media player on a resolved format.
// Players are started with exec.Command and an explicit argument slice.
package player

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"screenwave/internal/media"
)

// Player is the interface for media player implementations.
type Player interface {
	// Play blocks until the player exits.
	Play(format media.FormatVariant, title string) error

	// Name returns the player binary name.
	Name() string

	// Available checks if the player binary exists in PATH.
	Available() bool
}

// New creates a player by name.
func New(name string) Player {
	switch name {
	case "mpv":
		return &MPV{}
	case "vlc":
		return &VLC{}
	case "iina", "celluloid":
		return &Generic{name: name}
	default:
		return &MPV{}
	}
}

func available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// run starts the player attached to the terminal. A non-zero exit is how
// most players report the user quitting, so it is not an error.
func run(name string, args []string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}
