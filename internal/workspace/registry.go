package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var errNotDir = errors.New("not a directory")

// RegistryOptions controls registry filtering.
type RegistryOptions struct {
	// SkipCurrent drops the project whose path exactly equals CurrentPath.
	// The comparison is deliberately literal: being in a subdirectory of a
	// project does not count as being in that project.
	SkipCurrent bool
	// CurrentPath defaults to the process working directory when empty.
	CurrentPath string
}

// BuildRegistry scans every home in configured order, appends standalone
// configured projects, and dedupes by path with the first occurrence winning.
// The result keeps discovery order; ranking relies on that as a tie-break.
func BuildRegistry(homes []Home, standalone []string, opts RegistryOptions) ([]Project, []Warning) {
	var warnings []Warning
	seen := make(map[string]struct{})
	projects := make([]Project, 0, 32)

	add := func(p Project) {
		p.Path = NormalizePath(p.Path)
		key := strings.ToLower(p.Path)
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		projects = append(projects, p)
	}

	for _, home := range homes {
		scanned, scanWarnings := ScanHome(home)
		warnings = append(warnings, scanWarnings...)
		for _, p := range scanned {
			add(p)
		}
	}

	for _, raw := range standalone {
		path := NormalizePath(raw)
		if path == "" {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			warnings = append(warnings, Warning{Path: path, Err: err})
			continue
		}
		if !info.IsDir() {
			warnings = append(warnings, Warning{Path: path, Err: errNotDir})
			continue
		}
		add(Project{Name: filepath.Base(path), Path: path})
	}

	if opts.SkipCurrent {
		projects = filterCurrent(projects, opts.CurrentPath)
	}
	disambiguateNames(projects)
	return projects, warnings
}

func filterCurrent(projects []Project, current string) []Project {
	if current == "" {
		wd, err := os.Getwd()
		if err != nil {
			return projects
		}
		current = wd
	}
	current = NormalizePath(current)
	out := projects[:0]
	for _, p := range projects {
		if p.Path == current {
			continue
		}
		out = append(out, p)
	}
	return out
}

// disambiguateNames qualifies colliding display names with the parent
// directory, so two "api" projects from different homes stay tellable apart.
func disambiguateNames(projects []Project) {
	counts := make(map[string]int, len(projects))
	for _, p := range projects {
		counts[strings.ToLower(p.Name)]++
	}
	for i := range projects {
		p := &projects[i]
		if counts[strings.ToLower(p.Name)] < 2 {
			continue
		}
		parent := filepath.Base(filepath.Dir(p.Path))
		if parent == "" || parent == "." || parent == string(filepath.Separator) {
			continue
		}
		p.Name = parent + "/" + p.Name
	}
}
