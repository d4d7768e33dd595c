// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"screenwave/internal/config"
)

// Setup applies the logging settings from cfg to the standard logger and
// returns an entry for components to derive from.
func Setup(cfg *config.Config) *logrus.Entry {
	return configure(logrus.StandardLogger(), cfg, os.Stderr)
}

func configure(l *logrus.Logger, cfg *config.Config, out io.Writer) *logrus.Entry {
	l.SetOutput(out)

	if cfg.LogJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	if cfg.Debug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}

	return logrus.NewEntry(l)
}
