package mux

import "testing"

func TestSessionName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "/home/u/projects/app", want: "/home/u/projects/app"},
		{input: "/home/u/projects/my.app", want: "/home/u/projects/my_app"},
		{input: "/home/u/work:stuff/api", want: "/home/u/work_stuff/api"},
		{input: "", want: "tps"},
		{input: "   ", want: "tps"},
		{input: "\x00\x01", want: "tps"},
	}
	for _, tt := range cases {
		if got := SessionName(tt.input); got != tt.want {
			t.Fatalf("SessionName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// Two projects with the same base name must map to distinct sessions.
func TestSessionNameKeepsPathsUnique(t *testing.T) {
	a := SessionName("/home/u/work/api")
	b := SessionName("/home/u/oss/api")
	if a == b {
		t.Fatalf("session names collide: %q", a)
	}
}

func TestInsideTmux(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TMUX_PANE", "")
	if insideTmux() {
		t.Fatalf("insideTmux() should be false")
	}
	t.Setenv("TMUX", "/tmp/tmux")
	if !insideTmux() {
		t.Fatalf("insideTmux() should be true when TMUX is set")
	}
}
