// Package formatter defines how rendered log entries are serialized into
// bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// BufferFormatter, which appends into a caller-provided bytes.Buffer.
// Handlers check for BufferFormatter at construction time and prefer it
// when available, so the write path reuses a handler-owned buffer.
//
// Both built-in formatters (TextFormatter and JSONFormatter) implement
// both interfaces. Buffers larger than 64 KiB are not returned to the
// pool to prevent a single large log line from permanently inflating
// memory usage.
package formatter
