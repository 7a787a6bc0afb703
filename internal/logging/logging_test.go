package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "revlens.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	LogQuery("revenue", 120*time.Millisecond, 42, nil)
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if !strings.Contains(content, "query=revenue") {
		t.Fatalf("expected LogQuery content, got: %s", content)
	}
	if !strings.Contains(content, "rows=42") {
		t.Fatalf("expected row count, got: %s", content)
	}
}

func TestBuildQueryMessageDefaults(t *testing.T) {
	msg := buildQueryMessage("  ", time.Second, 0, nil)
	if !strings.Contains(msg, "query=unknown") {
		t.Fatalf("expected default query label, got: %s", msg)
	}

	msg = buildQueryMessage("mix_adjusted", time.Second, 0, errors.New("boom"))
	if !strings.Contains(msg, `error="boom"`) {
		t.Fatalf("expected error detail, got: %s", msg)
	}
	if strings.Contains(msg, "rows=") {
		t.Fatalf("row count should be omitted on error, got: %s", msg)
	}
}
