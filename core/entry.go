package core

import (
	"strings"
	"sync"
	"time"
)

// Level represents the severity level of a log entry. Each level maps to
// its own render channel on a handler.
type Level int8

const (
	// InfoLevel for general informational messages
	InfoLevel Level = iota
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	return l >= InfoLevel && l <= ErrorLevel
}

// ParseLevel converts a string to a Level. Unknown strings map to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Entry is the render payload for a single log event.
type Entry struct {
	Time    time.Time
	Level   Level
	Name    string
	Message string
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Time{}
	e.Level = InfoLevel
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Name = ""
	e.Message = ""
	entryPool.Put(e)
}
