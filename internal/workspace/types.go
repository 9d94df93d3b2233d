package workspace

import "fmt"

// HomeKind distinguishes configured homes from homes discovered mid-scan.
type HomeKind int

const (
	// HomeExplicit is a project home listed in the configuration.
	HomeExplicit HomeKind = iota
	// HomeImplicit is a project home discovered while scanning another home,
	// marked by a .bare directory (a bare repository used for worktrees).
	HomeImplicit
)

func (k HomeKind) String() string {
	if k == HomeImplicit {
		return "implicit"
	}
	return "explicit"
}

// Home is a directory containing projects.
type Home struct {
	Path string
	Kind HomeKind
}

// Project is a directory recognized as a switch target.
type Project struct {
	// Name is the display name: the last path segment, or parent/segment when
	// two discovered projects share a segment name.
	Name string
	// Path is the normalized absolute path and the project's identity.
	Path string
	// Origin is the home that produced the project, nil for standalone
	// configured projects.
	Origin *Home
}

// Warning reports a path skipped during discovery. Warnings never abort a
// scan; callers surface them and move on.
type Warning struct {
	Path string
	Err  error
}

func (w Warning) String() string {
	if w.Err == nil {
		return fmt.Sprintf("skipped %s", w.Path)
	}
	return fmt.Sprintf("skipped %s: %v", w.Path, w.Err)
}
