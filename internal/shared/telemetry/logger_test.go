package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read: %v", err)
	}
	return buf.String()
}

func TestInfoWritesJSONLine(t *testing.T) {
	out := captureStdout(t, func() {
		Info("advisor.success", map[string]any{"pipeline": "recommendations", "count": 3})
	})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	var payload map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &payload); err != nil {
		t.Fatalf("decode: %v (%q)", err, out)
	}
	if payload["msg"] != "advisor.success" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
	if payload["pipeline"] != "recommendations" {
		t.Fatalf("unexpected pipeline: %v", payload["pipeline"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("missing ts")
	}
}

func TestErrorFieldsRenderAsStrings(t *testing.T) {
	out := captureStdout(t, func() {
		Error("db.failed", map[string]any{"error": errors.New("boom")})
	})
	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", payload["error"])
	}
}

func TestInitRespectsLevel(t *testing.T) {
	Init("error")
	t.Cleanup(func() { Init("info") })
	out := captureStdout(t, func() {
		Info("hidden", nil)
		Warn("hidden", nil)
	})
	if strings.TrimSpace(out) != "" {
		t.Fatalf("expected no output below error level, got %q", out)
	}
}
