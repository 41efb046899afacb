package handler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/scopelog/core"
	"github.com/philipp01105/scopelog/formatter"
)

// ErrHandlerClosed is returned by Handle once the handler has been closed.
var ErrHandlerClosed = errors.New("handler: closed")

// ConsoleHandler writes log entries to one writer per level
type ConsoleHandler struct {
	writers         [3]io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	stats           *Stats
	mu              sync.Mutex // protects syncBuf and writers
	syncBuf         bytes.Buffer
	closed          bool
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// InfoWriter receives Info entries (default: os.Stdout)
	InfoWriter io.Writer
	// WarnWriter receives Warn entries (default: os.Stderr)
	WarnWriter io.Writer
	// ErrorWriter receives Error entries (default: os.Stderr)
	ErrorWriter io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.InfoWriter == nil {
		cfg.InfoWriter = os.Stdout
	}
	if cfg.WarnWriter == nil {
		cfg.WarnWriter = os.Stderr
	}
	if cfg.ErrorWriter == nil {
		cfg.ErrorWriter = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &ConsoleHandler{
		formatter: cfg.Formatter,
		stats:     NewStats(),
	}
	h.writers[core.InfoLevel] = cfg.InfoWriter
	h.writers[core.WarnLevel] = cfg.WarnWriter
	h.writers[core.ErrorLevel] = cfg.ErrorWriter

	// Cache BufferFormatter to format into the handler-owned buffer
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	if h.bufferFormatter != nil {
		h.syncBuf.Grow(256)
	}
	return h
}

// Handle formats the entry and writes it to the writer for its level.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if !entry.Level.Valid() {
		return errors.Errorf("handler: unknown level %d", int(entry.Level))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHandlerClosed
	}

	w := h.writers[entry.Level]

	var err error
	if h.bufferFormatter != nil {
		h.syncBuf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.syncBuf)
		_, err = w.Write(h.syncBuf.Bytes())
	} else {
		var data []byte
		data, err = h.formatter.Format(entry)
		if err == nil {
			_, err = w.Write(data)
		}
	}

	if err != nil {
		h.stats.IncrementFailed(entry.Level)
		return errors.Wrapf(err, "handler: write %s entry", entry.Level)
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// Stats returns the handler statistics
func (h *ConsoleHandler) Stats() *Stats {
	return h.stats
}

// Close closes the handler. The standard streams are never closed; any
// other writer implementing io.Closer is closed once.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil // Already closed
	}
	h.closed = true

	var err error
	seen := make(map[io.Closer]bool, 3)
	for _, w := range h.writers {
		c, ok := w.(io.Closer)
		if !ok || seen[c] || w == os.Stdout || w == os.Stderr {
			continue
		}
		seen[c] = true
		err = multierr.Append(err, c.Close())
	}
	return err
}
