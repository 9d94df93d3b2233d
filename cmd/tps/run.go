package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/anna-singleton/tps/internal/logging"
	"github.com/anna-singleton/tps/internal/mux"
	"github.com/anna-singleton/tps/internal/recency"
	"github.com/anna-singleton/tps/internal/tpsconfig"
	"github.com/anna-singleton/tps/internal/tui/picker"
	"github.com/anna-singleton/tps/internal/userpath"
	"github.com/anna-singleton/tps/internal/workspace"
)

// env holds everything an action needs after config load and discovery.
type env struct {
	cfg      tpsconfig.Config
	cache    *recency.Cache
	ranked   []workspace.Project
	closeLog func() error
}

func (e *env) close() {
	if e.closeLog != nil {
		_ = e.closeLog()
	}
}

func setup(cmd *cli.Command) (*env, error) {
	cfgPath := strings.TrimSpace(cmd.String("config"))
	if cfgPath == "" {
		var err error
		cfgPath, err = tpsconfig.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := tpsconfig.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	closeLog, err := logging.Init(cfg.Log)
	if err != nil {
		return nil, err
	}

	mode := cfg.ResolvedSortMode()
	if override := strings.TrimSpace(cmd.String("sort")); override != "" {
		parsed, err := workspace.ParseSortMode(override)
		if err != nil {
			_ = closeLog()
			return nil, err
		}
		mode = parsed
	}

	cachePath, err := cfg.ResolvedCachePath()
	if err != nil {
		_ = closeLog()
		return nil, err
	}
	cache, loadErr := recency.Load(cachePath, recency.DefaultCapacity)
	if loadErr != nil {
		// Ranking degrades to discovery order; the run continues.
		slog.Warn("access cache unusable, treating every project as never used", "path", cachePath, "error", loadErr)
	}

	projects, warnings := workspace.BuildRegistry(cfg.Homes(), cfg.StandaloneProjects(), workspace.RegistryOptions{
		SkipCurrent: cfg.SkipCurrent,
	})
	for _, w := range warnings {
		slog.Warn("discovery skipped path", "path", w.Path, "error", w.Err)
	}

	return &env{
		cfg:      cfg,
		cache:    cache,
		ranked:   workspace.Rank(projects, mode, cache),
		closeLog: closeLog,
	}, nil
}

func runPick(ctx context.Context, cmd *cli.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	if len(e.ranked) == 0 {
		fmt.Fprintln(os.Stderr, "no projects found; check project_homes in the config")
		return nil
	}
	project, picked, err := picker.Run(e.ranked)
	if err != nil {
		return err
	}
	if !picked {
		return nil
	}
	return activate(ctx, cmd, e, project)
}

func runList(ctx context.Context, cmd *cli.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	pathsOnly := cmd.Bool("paths")
	for _, p := range e.ranked {
		if pathsOnly {
			fmt.Fprintln(os.Stdout, p.Path)
			continue
		}
		fmt.Fprintf(os.Stdout, "%s\t%s\n", p.Name, userpath.ShortenUser(p.Path))
	}
	return nil
}

func runSwitch(ctx context.Context, cmd *cli.Command) error {
	query := strings.TrimSpace(cmd.Args().First())
	if query == "" {
		return fmt.Errorf("switch needs a project name or path")
	}
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	project, ok := findProject(e.ranked, query)
	if !ok {
		return fmt.Errorf("no project matches %q", query)
	}
	return activate(ctx, cmd, e, project)
}

// findProject matches by display name first, then by normalized path.
func findProject(projects []workspace.Project, query string) (workspace.Project, bool) {
	for _, p := range projects {
		if strings.EqualFold(p.Name, query) {
			return p, true
		}
	}
	asPath := workspace.NormalizePath(query)
	for _, p := range projects {
		if p.Path == asPath {
			return p, true
		}
	}
	return workspace.Project{}, false
}

// activate records the selection and hands the project to tmux. The cache
// write happens first and synchronously, so the next invocation sees it even
// if the process dies right after the switch.
func activate(ctx context.Context, cmd *cli.Command, e *env, project workspace.Project) error {
	if err := e.cache.Touch(project.Path, time.Now()); err != nil {
		// The user still gets their session.
		slog.Warn("could not record selection", "project", project.Path, "error", err)
	}

	session := mux.SessionName(project.Path)
	if cmd.Bool("dry-run") {
		fmt.Fprintf(os.Stdout, "%s\t%s\n", session, project.Path)
		return nil
	}
	client, err := mux.NewTmuxClient(cmd.String("tmux"))
	if err != nil {
		return err
	}
	return mux.SwitchTo(ctx, client, session, project.Path)
}
