package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGlobalLoggerUsableBeforeInit(t *testing.T) {
	// Logger and Sugar default to no-ops, so packages may log during tests
	// or early boot without InitLogger having run.
	if Logger == nil || Sugar == nil {
		t.Fatal("global loggers must never be nil")
	}
	Sugar.Warnf("no-op logger accepts %s", "calls")
}

func TestNewRollingFileLoggerBadPath(t *testing.T) {
	// A file where the parent directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	if _, err := NewRollingFileLogger(filepath.Join(blocker, "sub", "access.log"), "info", 10, 3, 7, false); err == nil {
		t.Fatal("expected error when log directory cannot be created")
	}
}
