package logging

import (
	"log/slog"
	"os"

	"gorm.io/gorm"
)

// Bootstrap installs the JSON stdout logger. The process calls this before
// the database is up; AttachStore later swaps in the store-backed pair.
func Bootstrap() {
	slog.SetDefault(slog.New(stdoutHandler()))
}

// AttachStore replaces the default logger with a tee of the stdout handler
// and a database sink for ERROR records. The returned sink must be stopped
// on shutdown so buffered rows are flushed.
func AttachStore(db *gorm.DB) *PGHandler {
	sink := NewPGHandler(db)
	slog.SetDefault(slog.New(&teeHandler{console: stdoutHandler(), store: sink}))
	return sink
}

func stdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
}
