package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/anna-singleton/tps/internal/appdirs"
	"github.com/anna-singleton/tps/internal/identity"
)

// Init installs the default slog logger per config and returns a close func
// for the file sink (a no-op for stderr/none).
func Init(cfg Config) (func() error, error) {
	cfg = merge(DefaultConfig(), cfg).WithEnv()

	writer, closeFn, err := resolveWriter(cfg)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	var handler slog.Handler
	if cfg.Format != nil && Format(*cfg.Format) == FormatJSON {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}
	slog.SetDefault(slog.New(handler))
	return closeFn, nil
}

func resolveWriter(cfg Config) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	sink := SinkStderr
	if cfg.Sink != nil {
		sink = Sink(*cfg.Sink)
	}
	switch sink {
	case SinkNone:
		return io.Discard, noop, nil
	case SinkFile:
		path := ""
		if cfg.File != nil {
			path = *cfg.File
		}
		if path == "" {
			dir, err := appdirs.CacheDir()
			if err != nil {
				return nil, nil, err
			}
			if _, err := appdirs.Ensure(dir); err != nil {
				return nil, nil, err
			}
			path = filepath.Join(dir, identity.LogFileName)
		}
		logger := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    intOr(cfg.MaxSizeMB, 10),
			MaxBackups: intOr(cfg.MaxBackups, 3),
			MaxAge:     intOr(cfg.MaxAgeDays, 7),
			Compress:   cfg.Compress == nil || *cfg.Compress,
		}
		return logger, logger.Close, nil
	default:
		return os.Stderr, noop, nil
	}
}

func intOr(v *int, fallback int) int {
	if v == nil || *v <= 0 {
		return fallback
	}
	return *v
}
