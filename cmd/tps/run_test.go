package main

import (
	"testing"

	"github.com/anna-singleton/tps/internal/workspace"
)

func TestFindProjectByName(t *testing.T) {
	projects := []workspace.Project{
		{Name: "Alpha", Path: "/p/alpha"},
		{Name: "beta", Path: "/p/beta"},
	}
	p, ok := findProject(projects, "alpha")
	if !ok || p.Path != "/p/alpha" {
		t.Fatalf("findProject(alpha) = %v, %v", p, ok)
	}
}

func TestFindProjectByPath(t *testing.T) {
	projects := []workspace.Project{
		{Name: "alpha", Path: "/p/alpha"},
	}
	p, ok := findProject(projects, "/p/alpha")
	if !ok || p.Name != "alpha" {
		t.Fatalf("findProject(path) = %v, %v", p, ok)
	}
	if _, ok := findProject(projects, "/p/missing"); ok {
		t.Fatalf("findProject(missing) should not match")
	}
}

func TestBuildAppShape(t *testing.T) {
	app := buildApp()
	if app.Name != "tps" {
		t.Fatalf("app name = %q", app.Name)
	}
	names := make(map[string]bool)
	for _, c := range app.Commands {
		names[c.Name] = true
	}
	for _, want := range []string{"list", "switch"} {
		if !names[want] {
			t.Fatalf("missing %q command", want)
		}
	}
}
