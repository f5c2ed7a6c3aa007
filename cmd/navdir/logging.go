package main

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// NewLogger returns a leveled, human readable slog logger writing to w.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return slog.New(handler)
}
