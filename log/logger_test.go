package log

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_JSONEntries(t *testing.T) {
	var b strings.Builder
	l := NewWithWriter(&b)

	l.Info("search query constructed", map[string]any{
		"org_alias": "MyOrg",
		"query":     "FIND {Acme} RETURNING Account(Id, Name )",
	})
	l.Error("command failed", map[string]any{"exit_code": 1})
	l.Sync()

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d entries, want 2:\n%s", len(lines), b.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("entry is not JSON: %v", err)
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["message"] != "search query constructed" {
		t.Errorf("message = %v", entry["message"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("timestamp key missing")
	}
	fields, ok := entry["fields"].(map[string]any)
	if !ok || fields["org_alias"] != "MyOrg" {
		t.Errorf("fields = %v", entry["fields"])
	}

	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatalf("entry is not JSON: %v", err)
	}
	if entry["level"] != "error" {
		t.Errorf("level = %v", entry["level"])
	}
}

func TestLogger_WithCarriesContext(t *testing.T) {
	var b strings.Builder
	l := NewWithWriter(&b).With(map[string]any{"org_alias": "MyOrg"})

	l.Info("authenticated", nil)
	l.Sync()

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(b.String())), &entry); err != nil {
		t.Fatalf("entry is not JSON: %v", err)
	}
	if entry["org_alias"] != "MyOrg" {
		t.Errorf("context field missing: %v", entry)
	}
}

func TestNewNop_Discards(t *testing.T) {
	l := NewNop()
	l.Info("nothing", nil)
	l.Warn("nothing", nil)
	l.Error("nothing", nil)
	l.Sync()
}
