// Package mux drives the terminal multiplexer that hosts project sessions.
package mux

import (
	"context"
	"os"
	"strings"

	"github.com/anna-singleton/tps/internal/identity"
)

// Client abstracts the multiplexer operations tps needs.
type Client interface {
	Binary() string
	IsInside() bool

	ListSessions(ctx context.Context) ([]string, error)
	SessionExists(ctx context.Context, name string) (bool, error)

	// NewSession creates a detached session rooted at dir.
	NewSession(ctx context.Context, name, dir string) error
	SwitchClient(ctx context.Context, name string) error
	AttachSession(ctx context.Context, name string) error
}

func insideTmux() bool {
	return os.Getenv("TMUX") != "" || os.Getenv("TMUX_PANE") != ""
}

// SessionName derives the multiplexer session name for a project path. The
// full path keeps same-named projects from different homes unique; characters
// tmux treats specially in target names are mapped to underscores.
func SessionName(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return identity.AppSlug
	}
	var b strings.Builder
	b.Grow(len(path))
	for _, r := range path {
		switch {
		case r == '.' || r == ':':
			b.WriteRune('_')
		case r < 0x20 || r == 0x7f:
			// drop control characters
		default:
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" {
		return identity.AppSlug
	}
	return name
}

// SwitchTo makes name the active session, creating it at dir first when
// missing. Inside a multiplexer the client is switched; outside, attached.
func SwitchTo(ctx context.Context, client Client, name, dir string) error {
	exists, err := client.SessionExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		if err := client.NewSession(ctx, name, dir); err != nil {
			return err
		}
	}
	if client.IsInside() {
		return client.SwitchClient(ctx, name)
	}
	return client.AttachSession(ctx, name)
}
