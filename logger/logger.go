package logger

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/philipp01105/scopelog/core"
	"github.com/philipp01105/scopelog/handler"
)

// maxDepth caps the ancestor walk in Write. Trees are only built through
// ChildLogger, so hitting it means the parent links were corrupted.
const maxDepth = 1024

var (
	// ErrUnbalancedTrim is the panic value (wrapped) when Trim is called
	// more times than Branch.
	ErrUnbalancedTrim = errors.New("logger trim was called more times than branch")

	// ErrLoggerCycle is the panic value (wrapped) when the parent chain
	// loops back or exceeds maxDepth.
	ErrLoggerCycle = errors.New("logger parent chain contains a cycle")
)

// entry is a buffered log event.
type entry struct {
	Time    time.Time
	Level   core.Level
	Name    string
	Message string

	rendered bool
}

// Logger buffers entries in a stack of groups and renders them on Write.
// The zero value is not usable; build one with NewBuilder or New.
type Logger struct {
	handler handler.Handler
	now     func() time.Time
	parent  *Logger

	mu      sync.Mutex // protects groups
	groups  [][]entry
	handled *handledSet
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler handler.Handler
	now     func() time.Time
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		now: time.Now,
	}
}

// WithHandler sets the handler entries are rendered to
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithClock sets the function used to timestamp entries
func (b *Builder) WithClock(now func() time.Time) *Builder {
	if now != nil {
		b.now = now
	}
	return b
}

// Build creates a root Logger. Without a handler it renders to the
// console (Info to stdout, Warn and Error to stderr).
func (b *Builder) Build() *Logger {
	h := b.handler
	if h == nil {
		h = handler.NewConsoleHandler(handler.ConsoleConfig{})
	}
	return newLogger(h, b.now, nil)
}

// New creates a root Logger rendering to h.
func New(h handler.Handler) *Logger {
	return NewBuilder().WithHandler(h).Build()
}

func newLogger(h handler.Handler, now func() time.Time, parent *Logger) *Logger {
	return &Logger{
		handler: h,
		now:     now,
		parent:  parent,
		groups:  [][]entry{{}},
		handled: newHandledSet(),
	}
}

// ChildLogger returns a new Logger whose parent is l. It shares l's
// handler and clock but buffers its own entries.
func (l *Logger) ChildLogger() *Logger {
	return newLogger(l.handler, l.now, l)
}

// Parent returns the logger l was created from, or nil for a root.
func (l *Logger) Parent() *Logger {
	return l.parent
}

// Log appends an entry to the innermost group. name may be empty.
func (l *Logger) Log(level core.Level, name, msg string) {
	l.mu.Lock()
	l.appendLocked(level, name, msg)
	l.mu.Unlock()
}

func (l *Logger) appendLocked(level core.Level, name, msg string) {
	last := len(l.groups) - 1
	l.groups[last] = append(l.groups[last], entry{
		Time:    l.now(),
		Level:   level,
		Name:    name,
		Message: msg,
	})
}

// Info logs an info message for the named sub-operation
func (l *Logger) Info(name, msg string) {
	l.Log(core.InfoLevel, name, msg)
}

// Warn logs a warning message for the named sub-operation
func (l *Logger) Warn(name, msg string) {
	l.Log(core.WarnLevel, name, msg)
}

// Branch opens a new group. With a nil work it only pushes and the caller
// must balance it with Trim.
//
// Otherwise work runs inside the group and the group is popped on every
// exit path. An error returned by work goes through Error and the value
// Error returns is returned to the caller. A panic is recovered, routed
// through Error the same way, and re-raised with the resulting error.
func (l *Logger) Branch(work func() error) error {
	l.push()
	if work == nil {
		return nil
	}
	defer l.Trim()

	defer func() {
		if r := recover(); r != nil {
			panic(l.Error(recovered(r)))
		}
	}()

	if err := work(); err != nil {
		return l.Error(FromError(err))
	}
	return nil
}

func (l *Logger) push() {
	l.mu.Lock()
	l.groups = append(l.groups, nil)
	l.mu.Unlock()
}

// Trim pops the innermost group, discarding entries that were never
// rendered. It panics with ErrUnbalancedTrim if only the root group is
// left; that is a scoping bug in the caller.
func (l *Logger) Trim() {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.groups)
	if n <= 1 {
		panic(errors.WithStack(ErrUnbalancedTrim))
	}
	l.groups[n-1] = nil
	l.groups = l.groups[:n-1]
}

// Depth returns the number of open groups, including the root group.
func (l *Logger) Depth() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.groups)
}

// Pending returns the number of buffered entries not yet rendered.
func (l *Logger) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, group := range l.groups {
		for i := range group {
			if !group[i].rendered {
				n++
			}
		}
	}
	return n
}

// Write renders every pending entry. Ancestors are flushed first, root
// downward, then l's own groups outermost first. Rendered entries stay in
// place and are skipped by later calls.
func (l *Logger) Write() {
	chain := l.ancestors()
	for i := len(chain) - 1; i >= 0; i-- {
		chain[i].flush()
	}
	l.flush()
}

// ancestors returns the parent chain, nearest first.
func (l *Logger) ancestors() []*Logger {
	var chain []*Logger
	for p := l.parent; p != nil; p = p.parent {
		if p == l || len(chain) >= maxDepth {
			panic(errors.Wrapf(ErrLoggerCycle, "after %d ancestors", len(chain)))
		}
		chain = append(chain, p)
	}
	return chain
}

func (l *Logger) flush() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, group := range l.groups {
		for i := range group {
			e := &group[i]
			if e.rendered {
				continue
			}
			l.render(e)
			e.rendered = true
		}
	}
}

// render hands e to the handler. Handler failures are not the logger's
// concern; the entry counts as rendered either way.
func (l *Logger) render(e *entry) {
	ce := core.GetEntry()
	ce.Time = e.Time
	ce.Level = e.Level
	ce.Name = e.Name
	ce.Message = e.Message
	_ = l.handler.Handle(ce)
	core.PutEntry(ce)
}

// Close closes the handler. Pending entries are not flushed; call Write
// first if they should be rendered.
func (l *Logger) Close() error {
	return l.handler.Close()
}
