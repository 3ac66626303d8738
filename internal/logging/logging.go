// Package logging builds the logrus logger used by the CLI.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/advent/internal/config"
)

// New returns a logger writing to w with the level and format from cfg.
// The level is assumed valid; config.Load rejects unknown names.
func New(w io.Writer, cfg config.Config) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		l.SetLevel(lvl)
	}
	switch cfg.LogFormat {
	case config.LogFormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return l
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
