package workspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// bareMarker inside a directory reclassifies it as an implicit project home.
const bareMarker = ".bare"

// Implicit homes nest at most one level deep.
const maxImplicitDepth = 1

// ScanHome lists the immediate subdirectories of a home as projects. A
// subdirectory carrying a .bare marker is treated as an implicit home and
// scanned one level deeper; the marker directory itself is never a project.
// Unreadable or vanished paths are reported as warnings, never as a failure.
func ScanHome(home Home) ([]Project, []Warning) {
	return scanHome(home, 0)
}

func scanHome(home Home, depth int) ([]Project, []Warning) {
	info, err := os.Stat(home.Path)
	if err != nil {
		return nil, []Warning{{Path: home.Path, Err: err}}
	}
	if !info.IsDir() {
		return nil, []Warning{{Path: home.Path, Err: errNotDir}}
	}
	entries, err := os.ReadDir(home.Path)
	if err != nil {
		return nil, []Warning{{Path: home.Path, Err: err}}
	}

	origin := home
	var projects []Project
	var warnings []Warning
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(home.Path, name)
		isDir, err := entryIsDir(path, entry)
		if err != nil {
			warnings = append(warnings, Warning{Path: path, Err: err})
			continue
		}
		if !isDir {
			continue
		}
		if depth < maxImplicitDepth && hasBareMarker(path) {
			implicit := Home{Path: path, Kind: HomeImplicit}
			children, childWarnings := scanHome(implicit, depth+1)
			projects = append(projects, children...)
			warnings = append(warnings, childWarnings...)
			continue
		}
		projects = append(projects, Project{
			Name:   name,
			Path:   path,
			Origin: &origin,
		})
	}
	return projects, warnings
}

// entryIsDir resolves symlinked entries through Stat; the fixed recursion
// depth makes loop protection unnecessary.
func entryIsDir(path string, entry os.DirEntry) (bool, error) {
	if entry.IsDir() {
		return true, nil
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func hasBareMarker(path string) bool {
	info, err := os.Stat(filepath.Join(path, bareMarker))
	return err == nil && info.IsDir()
}
