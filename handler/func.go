package handler

import (
	"github.com/philipp01105/scopelog/core"
)

// FuncHandler renders through three plain functions, one per level. A nil
// function drops entries of its level.
type FuncHandler struct {
	Info  func(msg string)
	Warn  func(msg string)
	Error func(msg string)
}

// Handle calls the function for entry.Level with the entry message.
func (h FuncHandler) Handle(entry *core.Entry) error {
	var fn func(string)
	switch entry.Level {
	case core.InfoLevel:
		fn = h.Info
	case core.WarnLevel:
		fn = h.Warn
	case core.ErrorLevel:
		fn = h.Error
	}
	if fn != nil {
		fn(entry.Message)
	}
	return nil
}

// Close is a no-op.
func (FuncHandler) Close() error {
	return nil
}
