package recency

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTouchRoundTripAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access_cache.toml")
	cache, err := Load(path, DefaultCapacity)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	when := time.Date(2026, 8, 30, 12, 34, 56, 0, time.UTC)
	if err := cache.Touch("/projects/app", when); err != nil {
		t.Fatalf("Touch() error: %v", err)
	}
	got, ok := cache.Get("/projects/app")
	if !ok || !got.Equal(when) {
		t.Fatalf("Get() = %v, %v, want %v", got, ok, when)
	}

	reloaded, err := Load(path, DefaultCapacity)
	if err != nil {
		t.Fatalf("Load(reload) error: %v", err)
	}
	got, ok = reloaded.Get("/projects/app")
	if !ok || !got.Equal(when) {
		t.Fatalf("reloaded Get() = %v, %v, want %v", got, ok, when)
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	cache, err := Load(filepath.Join(t.TempDir(), "nope.toml"), DefaultCapacity)
	if err != nil {
		t.Fatalf("Load(missing) error: %v", err)
	}
	if cache.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", cache.Len())
	}
}

func TestLoadCorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access_cache.toml")
	if err := os.WriteFile(path, []byte("{{{ not toml"), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	cache, err := Load(path, DefaultCapacity)
	if err == nil {
		t.Fatalf("expected degradation error for corrupt cache")
	}
	if cache == nil || cache.Len() != 0 {
		t.Fatalf("corrupt cache must still be usable and empty, got %v", cache)
	}
	// The degraded cache still accepts writes.
	if err := cache.Touch("/projects/app", time.Now()); err != nil {
		t.Fatalf("Touch() on degraded cache error: %v", err)
	}
}

func TestTouchUpdatesExistingWithoutEviction(t *testing.T) {
	cache := Blank("", 10)
	base := time.Unix(1000, 0)
	for i := 0; i < 3; i++ {
		if err := cache.Touch(fmt.Sprintf("/p/%d", i), base.Add(time.Duration(i)*time.Second)); err != nil {
			t.Fatalf("Touch() error: %v", err)
		}
	}
	if err := cache.Touch("/p/1", base.Add(time.Hour)); err != nil {
		t.Fatalf("Touch(update) error: %v", err)
	}
	if cache.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", cache.Len())
	}
	got, ok := cache.Get("/p/1")
	if !ok || !got.Equal(base.Add(time.Hour)) {
		t.Fatalf("Get(/p/1) = %v, %v", got, ok)
	}
}

func TestTouchEvictsOldestOverCapacity(t *testing.T) {
	cache := Blank("", 3)
	base := time.Unix(1000, 0)
	for i := 0; i < 3; i++ {
		if err := cache.Touch(fmt.Sprintf("/p/%d", i), base.Add(time.Duration(i)*time.Second)); err != nil {
			t.Fatalf("Touch() error: %v", err)
		}
	}
	if err := cache.Touch("/p/new", base.Add(time.Minute)); err != nil {
		t.Fatalf("Touch(new) error: %v", err)
	}
	if cache.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", cache.Len())
	}
	if _, ok := cache.Get("/p/0"); ok {
		t.Fatalf("oldest entry /p/0 should have been ejected")
	}
	if _, ok := cache.Get("/p/new"); !ok {
		t.Fatalf("new entry missing after eviction")
	}
}

func TestMemoryOnlyCacheHasNoFile(t *testing.T) {
	cache := Blank("", DefaultCapacity)
	if err := cache.Touch("/p/x", time.Now()); err != nil {
		t.Fatalf("Touch() error: %v", err)
	}
}
