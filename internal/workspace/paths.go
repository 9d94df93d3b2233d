package workspace

import (
	"path/filepath"
	"strings"

	"github.com/anna-singleton/tps/internal/userpath"
)

// NormalizePath expands a leading ~, cleans the path, and makes it absolute.
func NormalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	path = userpath.ExpandUser(path)
	path = filepath.Clean(path)
	if filepath.IsAbs(path) {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// NormalizeHomes converts configured home paths into explicit Homes,
// dropping empty entries and duplicates while preserving order.
func NormalizeHomes(paths []string) []Home {
	if len(paths) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(paths))
	out := make([]Home, 0, len(paths))
	for _, raw := range paths {
		path := NormalizePath(raw)
		if path == "" {
			continue
		}
		key := strings.ToLower(path)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Home{Path: path, Kind: HomeExplicit})
	}
	return out
}
