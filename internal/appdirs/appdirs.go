package appdirs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anna-singleton/tps/internal/identity"
)

const (
	EnvConfigDir = "TPS_CONFIG_DIR"
	EnvCacheDir  = "TPS_CACHE_DIR"
)

// ConfigDir returns the directory holding the tps config file.
func ConfigDir() (string, error) {
	if override := strings.TrimSpace(os.Getenv(EnvConfigDir)); override != "" {
		return override, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, identity.AppSlug), nil
}

// CacheDir returns the directory holding the access cache and log files.
func CacheDir() (string, error) {
	if override := strings.TrimSpace(os.Getenv(EnvCacheDir)); override != "" {
		return override, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(dir, identity.AppSlug), nil
}

// Ensure creates dir with user-only permissions if it does not exist.
func Ensure(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("directory path is empty")
	}
	info, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat %q: %w", dir, err)
		}
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("create %q: %w", dir, err)
		}
		return dir, nil
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", dir)
	}
	return dir, nil
}
