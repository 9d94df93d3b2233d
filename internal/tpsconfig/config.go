// Package tpsconfig loads the tps config file. The discovery core consumes
// the loaded values as-is; structural problems are surfaced here.
package tpsconfig

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/anna-singleton/tps/internal/appdirs"
	"github.com/anna-singleton/tps/internal/identity"
	"github.com/anna-singleton/tps/internal/logging"
	"github.com/anna-singleton/tps/internal/userpath"
	"github.com/anna-singleton/tps/internal/workspace"
)

// Config represents config.toml in the tps config directory.
type Config struct {
	ProjectHomes []string       `toml:"project_homes"`
	Projects     []string       `toml:"projects"`
	SkipCurrent  bool           `toml:"skip_current"`
	SortMode     string         `toml:"sort_mode"`
	CachePath    string         `toml:"cache_path"`
	Log          logging.Config `toml:"log"`
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := appdirs.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, identity.ConfigFileName), nil
}

// Load reads the config file. A missing file yields an empty config (the
// project list will just be empty); a malformed one is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// Homes returns the configured explicit project homes in order.
func (c Config) Homes() []workspace.Home {
	return workspace.NormalizeHomes(c.ProjectHomes)
}

// StandaloneProjects returns the configured standalone project paths with ~
// expanded; existence is checked later by the registry.
func (c Config) StandaloneProjects() []string {
	out := make([]string, 0, len(c.Projects))
	for _, p := range c.Projects {
		p = userpath.ExpandUser(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ResolvedSortMode parses sort_mode, falling back to alphabetical with a
// warning on unrecognized values.
func (c Config) ResolvedSortMode() workspace.SortMode {
	mode, err := workspace.ParseSortMode(c.SortMode)
	if err != nil {
		slog.Warn("unrecognized sort_mode, using alphabetical", "value", c.SortMode)
	}
	return mode
}

// ResolvedCachePath returns cache_path or the platform default.
func (c Config) ResolvedCachePath() (string, error) {
	if c.CachePath != "" {
		return workspace.NormalizePath(c.CachePath), nil
	}
	dir, err := appdirs.CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, identity.CacheFileName), nil
}
