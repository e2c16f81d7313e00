package logging

import (
	"context"
	"log/slog"
)

// teeHandler forwards every record to the console handler and offers it to
// the database sink, which ignores levels below ERROR.
type teeHandler struct {
	console slog.Handler
	store   slog.Handler
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.console.Enabled(ctx, level) || h.store.Enabled(ctx, level)
}

func (h *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	if h.console.Enabled(ctx, record.Level) {
		firstErr = h.console.Handle(ctx, record)
	}
	if h.store.Enabled(ctx, record.Level) {
		if err := h.store.Handle(ctx, record); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{console: h.console.WithAttrs(attrs), store: h.store.WithAttrs(attrs)}
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{console: h.console.WithGroup(name), store: h.store.WithGroup(name)}
}
