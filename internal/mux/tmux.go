package mux

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// TmuxClient shells out to the tmux binary.
type TmuxClient struct {
	bin string
	run func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewTmuxClient resolves the tmux binary and returns a client.
func NewTmuxClient(tmuxPath string) (*TmuxClient, error) {
	if tmuxPath == "" {
		var err error
		tmuxPath, err = exec.LookPath("tmux")
		if err != nil {
			return nil, fmt.Errorf("tmux not found in PATH: %w", err)
		}
	}
	return &TmuxClient{bin: tmuxPath, run: exec.CommandContext}, nil
}

// WithExec allows tests to override the exec implementation.
func (c *TmuxClient) WithExec(fn func(context.Context, string, ...string) *exec.Cmd) {
	c.run = fn
}

func (c *TmuxClient) Binary() string {
	return c.bin
}

func (c *TmuxClient) IsInside() bool {
	return insideTmux()
}

func (c *TmuxClient) ListSessions(ctx context.Context) ([]string, error) {
	cmd := c.run(ctx, c.bin, "list-sessions", "-F", "#{session_name}")
	out, err := cmd.Output()
	if err != nil {
		// Exit 1 with no server running means no sessions, not a failure.
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("tmux list-sessions: %w", err)
	}
	var sessions []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			sessions = append(sessions, line)
		}
	}
	return sessions, nil
}

func (c *TmuxClient) SessionExists(ctx context.Context, name string) (bool, error) {
	cmd := c.run(ctx, c.bin, "has-session", "-t", name)
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return false, nil
		}
		return false, fmt.Errorf("tmux has-session: %w", err)
	}
	return true, nil
}

func (c *TmuxClient) NewSession(ctx context.Context, name, dir string) error {
	cmd := c.run(ctx, c.bin, "new-session", "-d", "-s", name, "-c", dir)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tmux new-session: %w", err)
	}
	return nil
}

func (c *TmuxClient) SwitchClient(ctx context.Context, name string) error {
	cmd := c.run(ctx, c.bin, "switch-client", "-t", name)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tmux switch-client: %w", err)
	}
	return nil
}

func (c *TmuxClient) AttachSession(ctx context.Context, name string) error {
	cmd := c.run(ctx, c.bin, "attach-session", "-t", name)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tmux attach-session: %w", err)
	}
	return nil
}
