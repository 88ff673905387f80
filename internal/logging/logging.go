// Package logging configures the zerolog logger shared by the qrencode CLI.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New builds a human-readable, leveled logger writing to w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps the CLI's --log-level flag to a zerolog.Level, defaulting
// to Info when s is empty.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(s)
}
