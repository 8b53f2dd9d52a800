// Package logging builds the driver's slog logger. Library packages
// never log; this wiring exists for the command-line surface only.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Options control the handlers behind the logger.
type Options struct {
	// Level names the minimum level: debug, info, warn or error.
	// Empty means info.
	Level string

	// File, when set, receives every record as JSON in addition to
	// the text output.
	File string
}

// New returns a logger writing human-readable records to w and, when
// a file is configured, JSON records to that file. All handlers see
// the same records through a fan-out. The returned close function
// releases the file handle and is never nil.
func New(w io.Writer, opts Options) (*slog.Logger, func() error, error) {
	var level slog.Level
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, nil, fmt.Errorf("parse log level %q: %w", opts.Level, err)
		}
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	}

	closer := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		closer = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}
