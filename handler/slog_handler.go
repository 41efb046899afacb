package handler

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/philipp01105/scopelog/core"
)

// SlogHandler renders entries into a log/slog.Handler, so any slog
// backend can serve as the sink.
type SlogHandler struct {
	handler slog.Handler
}

// NewSlogHandler creates a new adapter writing to h.
func NewSlogHandler(h slog.Handler) *SlogHandler {
	return &SlogHandler{handler: h}
}

// Handle converts the entry to a slog.Record and passes it on. Entries the
// wrapped handler does not enable are skipped.
func (s *SlogHandler) Handle(entry *core.Entry) error {
	level, err := coreLevelToSlog(entry.Level)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if !s.handler.Enabled(ctx, level) {
		return nil
	}

	record := slog.NewRecord(entry.Time, level, entry.Message, 0)
	if entry.Name != "" {
		record.AddAttrs(slog.String("name", entry.Name))
	}
	return s.handler.Handle(ctx, record)
}

// Close is a no-op; slog handlers have no lifecycle.
func (s *SlogHandler) Close() error {
	return nil
}

// coreLevelToSlog converts a core.Level to a slog.Level.
func coreLevelToSlog(level core.Level) (slog.Level, error) {
	switch level {
	case core.InfoLevel:
		return slog.LevelInfo, nil
	case core.WarnLevel:
		return slog.LevelWarn, nil
	case core.ErrorLevel:
		return slog.LevelError, nil
	default:
		return 0, errors.Errorf("handler: unknown level %d", int(level))
	}
}
