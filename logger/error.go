package logger

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/philipp01105/scopelog/core"
)

type inputKind uint8

const (
	inputError inputKind = iota
	inputMessage
	inputValue
)

// ErrorInput is what Error accepts: a message, an existing error, or any
// other value. Build one with FromMessage, FromError or FromValue. The zero
// value is FromError(nil).
type ErrorInput struct {
	kind    inputKind
	message string
	err     error
	value   interface{}
}

// FromMessage always produces a new error when passed to Error.
func FromMessage(msg string) ErrorInput {
	return ErrorInput{kind: inputMessage, message: msg}
}

// FromError logs err unless this logger already handled it.
func FromError(err error) ErrorInput {
	return ErrorInput{kind: inputError, err: err}
}

// FromValue formats v with fmt.Sprint and wraps it in a new error.
func FromValue(v interface{}) ErrorInput {
	return ErrorInput{kind: inputValue, value: v}
}

// recovered maps a recovered panic value onto an ErrorInput.
func recovered(r interface{}) ErrorInput {
	switch v := r.(type) {
	case error:
		return FromError(v)
	case string:
		return FromMessage(v)
	default:
		return FromValue(v)
	}
}

// Error records an error entry and flushes. It returns the error the
// caller should propagate:
//
//   - FromMessage: a fresh error carrying msg, logged every time.
//   - FromError: err itself. It is logged only the first time this logger
//     sees it; a nil err is ignored and nil is returned.
//   - FromValue: a fresh error carrying fmt.Sprint(v), logged.
//
// Logged errors are marked handled on l and on its parent, then Write is
// called, which renders everything pending along the ancestor chain, not
// just the error.
func (l *Logger) Error(in ErrorInput) error {
	switch in.kind {
	case inputMessage:
		err := errors.New(in.message)
		l.record(err, in.message)
		return err
	case inputValue:
		return l.Error(FromError(errors.New(fmt.Sprint(in.value))))
	default:
		if in.err == nil {
			return nil
		}
		l.record(in.err, in.err.Error())
		return in.err
	}
}

// Errorf is shorthand for Error(FromMessage(fmt.Sprintf(format, args...))).
func (l *Logger) Errorf(format string, args ...interface{}) error {
	return l.Error(FromMessage(fmt.Sprintf(format, args...)))
}

// record logs msg at error level unless err is already handled, marks err
// handled here and on the parent, and flushes.
func (l *Logger) record(err error, msg string) {
	l.mu.Lock()
	if l.handled.contains(err) {
		l.mu.Unlock()
		return
	}
	l.appendLocked(core.ErrorLevel, "", msg)
	l.handled.add(err)
	l.mu.Unlock()

	if l.parent != nil {
		l.parent.handled.add(err)
	}
	l.Write()
}

// Handled reports whether err has already been logged by, or propagated
// to, l.
func (l *Logger) Handled(err error) bool {
	return l.handled.contains(err)
}
