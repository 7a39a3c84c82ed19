package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerWritesJSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Info).With(F("component", "store"))
	logger.Info("notebook created", F("notebook_id", "1-0"), F("err", errors.New("boom")))

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "notebook created" || entry["level"] != "info" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if entry["component"] != "store" || entry["notebook_id"] != "1-0" || entry["err"] != "boom" {
		t.Fatalf("missing fields: %#v", entry)
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Warn)
	logger.Info("hidden")
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}
	if logger.Enabled(Info) || !logger.Enabled(Error) {
		t.Fatalf("unexpected Enabled results")
	}
	logger.Error("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected error line, got %q", buf.String())
	}
}

func TestNewFileCreatesLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "inkwell.log")
	logger, err := NewFile(FileOptions{Path: path, MaxSizeMB: 1}, Debug)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	logger.Debug("hello")
	_ = logger.Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Fatalf("unexpected log contents: %s", data)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"debug": Debug, "WARNING": Warn, "error": Error, "": Info, "bogus": Info}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNopIsSilent(t *testing.T) {
	logger := Nop()
	if logger.Enabled(Error) {
		t.Fatalf("nop logger should not be enabled")
	}
	logger.Error("ignored")
}
