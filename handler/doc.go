// Package handler provides the Handler interface and its built-in
// implementations for rendering log entries flushed by a Logger.
//
// A Handler exposes one render channel per level (Info, Warn, Error),
// selected by entry.Level. The Logger calls Handle at most once per
// buffered entry, so handlers never see duplicates and need no
// deduplication of their own.
//
// Built-in handlers:
//
//   - ConsoleHandler writes formatted entries to per-level writers
//     (default: Info to stdout, Warn and Error to stderr).
//   - ZapHandler renders into a *zap.Logger.
//   - SlogHandler renders into any log/slog.Handler.
//   - MultiHandler fans out a single entry to multiple child handlers.
//   - FuncHandler adapts three plain functions, one per level.
//
// ConsoleHandler tracks processed and failed counts per level via the
// Stats type, which can be queried at runtime.
package handler
