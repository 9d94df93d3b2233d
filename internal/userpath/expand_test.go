package userpath

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	if got := ExpandUser("~"); got != home {
		t.Fatalf("ExpandUser(~) = %q, want %q", got, home)
	}
	want := filepath.Join(home, "projects")
	if got := ExpandUser("~/projects"); got != want {
		t.Fatalf("ExpandUser(~/projects) = %q, want %q", got, want)
	}
	if got := ExpandUser("/abs/path"); got != "/abs/path" {
		t.Fatalf("ExpandUser(abs) = %q", got)
	}
	if got := ExpandUser("~otheruser/x"); got != "~otheruser/x" {
		t.Fatalf("ExpandUser(~otheruser) = %q", got)
	}
	if got := ExpandUser(""); got != "" {
		t.Fatalf("ExpandUser(empty) = %q", got)
	}
}

func TestShortenUser(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	if got := ShortenUser(home); got != "~" {
		t.Fatalf("ShortenUser(home) = %q", got)
	}
	path := filepath.Join(home, "projects", "app")
	want := filepath.Join("~", "projects", "app")
	if got := ShortenUser(path); got != want {
		t.Fatalf("ShortenUser(%q) = %q, want %q", path, got, want)
	}
	if got := ShortenUser("/srv/data"); got != "/srv/data" {
		t.Fatalf("ShortenUser(outside) = %q", got)
	}
}
