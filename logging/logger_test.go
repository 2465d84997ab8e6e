package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duodash.log")
	defer Set(nil)

	l, err := Init(path, true)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	l.Debug("scene loaded", zap.String("scene", "Level 1"))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"scene":"Level 1"`) {
		t.Errorf("log file missing entry: %s", data)
	}
	if L() != l {
		t.Error("Init did not install the process logger")
	}
}

func TestInitRejectsBadPath(t *testing.T) {
	dir := t.TempDir()
	if _, err := Init(filepath.Join(dir, "missing", "x.log"), false); err == nil {
		t.Fatal("expected an error for an unwritable path")
	}
}

func TestSetNilFallsBackToNop(t *testing.T) {
	Set(nil)
	if L() == nil {
		t.Fatal("L returned nil")
	}
	L().Info("dropped")
}
