//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMapUnix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.nbt")
	want := []byte{0x0a, 0x00, 0x00, 0x00}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, cleanup, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	defer func() {
		if cleanupErr := cleanup(); cleanupErr != nil {
			t.Fatalf("cleanup: %v", cleanupErr)
		}
	}()
	if len(data) != len(want) {
		t.Fatalf("len mismatch: got %d want %d", len(data), len(want))
	}
	for i, b := range want {
		if data[i] != b {
			t.Fatalf("byte %d mismatch: got 0x%x want 0x%x", i, data[i], b)
		}
	}
}

func TestMapUnixZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.nbt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, cleanup, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected zero-length mapping, got %d", len(data))
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}

func TestMapUnixMissingFile(t *testing.T) {
	if _, _, err := Map(filepath.Join(t.TempDir(), "absent.nbt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
