package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewJSONIncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(New(&buf, "info", "json"))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := WithRequestID(context.Background(), "req-1")
	Error(ctx, "snapshot failed", errors.New("boom"), "country", "US")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v: %s", err, buf.String())
	}
	if entry["request_id"] != "req-1" {
		t.Errorf("request_id = %v, want req-1", entry["request_id"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v, want boom", entry["error"])
	}
	if entry["country"] != "US" {
		t.Errorf("country = %v, want US", entry["country"])
	}
}

func TestContextHelpersRespectLevel(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	ctx := WithRequestID(context.Background(), "req-2")

	slog.SetDefault(New(&buf, "info", "text"))
	Debug(ctx, "skipped entry")
	if buf.Len() != 0 {
		t.Errorf("debug line written at info level: %q", buf.String())
	}

	slog.SetDefault(New(&buf, "debug", "text"))
	Debug(ctx, "skipped entry", "id", 7)
	out := buf.String()
	for _, want := range []string{"level=DEBUG", "skipped entry", "request_id=req-2", "id=7"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output %q missing %q", out, want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", "text")
	l.Info("hidden")
	l.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRequestID(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("RequestID(empty) = %q", got)
	}
	id := NewRequestID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("NewRequestID() = %q is not a UUID: %v", id, err)
	}
	if NewRequestID() == id {
		t.Error("NewRequestID() repeated an id")
	}
}
