package cmd

import (
	"io"
	"log/slog"

	"golang.org/x/term"
)

type fileDescriptor interface {
	Fd() uintptr
}

// newLogger writes text to terminals and JSON otherwise. Verbose runs log at
// debug level next to the regular output.
func newLogger(opts wireOptions) *slog.Logger {
	level := slog.LevelInfo
	dest := opts.errOut
	if opts.verbose {
		level = slog.LevelDebug
		dest = opts.out
	}

	options := &slog.HandlerOptions{Level: level}
	if isTerminal(dest) {
		return slog.New(slog.NewTextHandler(dest, options))
	}
	return slog.New(slog.NewJSONHandler(dest, options))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fileDescriptor)
	return ok && term.IsTerminal(int(f.Fd()))
}
