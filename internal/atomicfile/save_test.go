package atomicfile

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestSaveCreatesFileAndParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.toml")
	if err := Save(path, []byte("a = 1\n"), 0o600); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "a = 1\n" {
		t.Fatalf("content = %q", data)
	}
	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat() error: %v", err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Fatalf("perm = %v, want 0600", info.Mode().Perm())
		}
	}
}

func TestSaveReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.toml")
	if err := Save(path, []byte("first"), 0o600); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := Save(path, []byte("second"), 0o600); err != nil {
		t.Fatalf("Save(replace) error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("content = %q, want %q", data, "second")
	}
}

func TestSaveRejectsEmptyPath(t *testing.T) {
	if err := Save("  ", []byte("x"), 0o600); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.toml")
	if err := Save(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("dir entries = %d, want 1", len(entries))
	}
}
