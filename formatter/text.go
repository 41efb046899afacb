package formatter

import (
	"bytes"
	"time"

	"github.com/philipp01105/scopelog/core"
)

// TextFormatter formats log entries as human-readable text:
//
//	2026-01-15T12:00:00Z [INFO] [step] doing work
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	return format(entry, f.FormatEntry), nil
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.InfoLevel:  "[INFO] ",
	core.WarnLevel:  "[WARN] ",
	core.ErrorLevel: "[ERROR] ",
}

// FormatEntry writes the formatted entry into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if !f.DisableTimestamp {
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	if entry.Level.Valid() {
		buf.WriteString(levelBrackets[entry.Level])
	} else {
		buf.WriteString("[UNKNOWN] ")
	}

	if entry.Name != "" {
		buf.WriteByte('[')
		buf.WriteString(entry.Name)
		buf.WriteString("] ")
	}

	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}
