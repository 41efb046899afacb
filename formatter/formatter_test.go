package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/scopelog/core"
)

func TestTextFormatter_Basic(t *testing.T) {
	f := NewTextFormatter(Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "test message",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "2026-02-18T13:00:00Z [INFO] test message\n"
	if string(result) != want {
		t.Errorf("Format() = %q, want %q", result, want)
	}
}

func TestTextFormatter_WithName(t *testing.T) {
	f := NewTextFormatter(Config{DisableTimestamp: true})

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.WarnLevel,
		Name:    "fetch",
		Message: "slow response",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "[WARN] [fetch] slow response\n"
	if string(result) != want {
		t.Errorf("Format() = %q, want %q", result, want)
	}
}

func TestTextFormatter_UnknownLevel(t *testing.T) {
	f := NewTextFormatter(Config{DisableTimestamp: true})

	result, _ := f.Format(&core.Entry{Level: core.Level(9), Message: "x"})
	if !strings.HasPrefix(string(result), "[UNKNOWN]") {
		t.Errorf("Expected '[UNKNOWN]' prefix, got: %s", result)
	}
}

func TestJSONFormatter_Basic(t *testing.T) {
	f := NewJSONFormatter(Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.ErrorLevel,
		Message: "test message",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// Verify it's valid JSON
	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if data["level"] != "ERROR" {
		t.Errorf("Expected level 'ERROR', got: %v", data["level"])
	}
	if data["message"] != "test message" {
		t.Errorf("Expected message 'test message', got: %v", data["message"])
	}
	if _, ok := data["name"]; ok {
		t.Errorf("Expected no name key for unnamed entry, got: %v", data["name"])
	}
}

func TestJSONFormatter_Escaping(t *testing.T) {
	f := NewJSONFormatter(Config{DisableTimestamp: true})

	entry := &core.Entry{
		Level:   core.InfoLevel,
		Name:    `step "one"`,
		Message: "line1\nline2\ttab\\ \x01",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v (%s)", err, result)
	}
	if data["message"] != entry.Message {
		t.Errorf("message round-trip = %q, want %q", data["message"], entry.Message)
	}
	if data["name"] != entry.Name {
		t.Errorf("name round-trip = %q, want %q", data["name"], entry.Name)
	}
	if _, ok := data["time"]; ok {
		t.Error("Expected no time key when timestamps are disabled")
	}
}

func TestJSONFormatter_InvalidUTF8(t *testing.T) {
	f := NewJSONFormatter(Config{DisableTimestamp: true})

	entry := &core.Entry{
		Level:   core.InfoLevel,
		Name:    "bad\xffname",
		Message: "héllo \xc3\x28 wörld \xe2\x82",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !json.Valid(result) {
		t.Fatalf("Invalid JSON: %q", result)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v (%q)", err, result)
	}
	if want := "héllo \ufffd( wörld \ufffd\ufffd"; data["message"] != want {
		t.Errorf("message = %q, want %q", data["message"], want)
	}
	if want := "bad\ufffdname"; data["name"] != want {
		t.Errorf("name = %q, want %q", data["name"], want)
	}
}

func TestFormatEntry_MatchesFormat(t *testing.T) {
	entry := &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Name:    "step",
		Message: "same bytes",
	}

	for name, f := range map[string]interface {
		Formatter
		BufferFormatter
	}{
		"text": NewTextFormatter(Config{}),
		"json": NewJSONFormatter(Config{}),
	} {
		t.Run(name, func(t *testing.T) {
			want, _ := f.Format(entry)
			var buf bytes.Buffer
			f.FormatEntry(entry, &buf)
			if buf.String() != string(want) {
				t.Errorf("FormatEntry() = %q, Format() = %q", buf.String(), want)
			}
		})
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{})
	entry := &core.Entry{Time: time.Now(), Level: core.InfoLevel, Name: "step", Message: "benchmark"}

	var buf bytes.Buffer
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.FormatEntry(entry, &buf)
	}
}
