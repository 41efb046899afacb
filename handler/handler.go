package handler

import (
	"github.com/philipp01105/scopelog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle renders a log entry on the channel selected by entry.Level.
	// The entry is only valid for the duration of the call.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Nop returns a handler that discards everything.
func Nop() Handler {
	return nopHandler{}
}

type nopHandler struct{}

func (nopHandler) Handle(*core.Entry) error { return nil }
func (nopHandler) Close() error             { return nil }
