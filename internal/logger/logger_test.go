package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "json", "prod").Info("hello", "k", "v")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON record, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "hello" || rec["k"] != "v" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestNew_TextLevels(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "text", "prod").Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug should be dropped in prod, got %q", buf.String())
	}

	New(&buf, "text", "dev").Debug("shown")
	if !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("debug should be logged in dev, got %q", buf.String())
	}
}
