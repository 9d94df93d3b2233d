package workspace

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// SortMode selects the ordering of the presented project list.
type SortMode int

const (
	SortAlphabetical SortMode = iota
	SortRecent
)

func (m SortMode) String() string {
	if m == SortRecent {
		return "recent"
	}
	return "alphabetical"
}

// ParseSortMode normalizes a sort mode string.
func ParseSortMode(value string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "alphabetical":
		return SortAlphabetical, nil
	case "recent":
		return SortRecent, nil
	default:
		return SortAlphabetical, fmt.Errorf("unknown sort mode %q (want alphabetical or recent)", value)
	}
}

// RecencySource exposes last-used timestamps keyed by project path. The
// ranker only reads it; selection bookkeeping happens elsewhere.
type RecencySource interface {
	Get(path string) (time.Time, bool)
}

// Rank orders projects for presentation without mutating the input. Both
// modes are stable sorts, so ties fall back to registry discovery order.
func Rank(projects []Project, mode SortMode, cache RecencySource) []Project {
	out := append([]Project(nil), projects...)
	switch mode {
	case SortRecent:
		sort.SliceStable(out, func(i, j int) bool {
			return lastUsed(cache, out[i]).After(lastUsed(cache, out[j]))
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			a := strings.ToLower(out[i].Name)
			b := strings.ToLower(out[j].Name)
			if a == b {
				return false
			}
			return a < b
		})
	}
	return out
}

// lastUsed returns the zero time for never-used projects, which sorts them
// after every touched project while staying stable among themselves.
func lastUsed(cache RecencySource, p Project) time.Time {
	if cache == nil {
		return time.Time{}
	}
	t, ok := cache.Get(p.Path)
	if !ok {
		return time.Time{}
	}
	return t
}
