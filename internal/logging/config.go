package logging

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Sink string

const (
	SinkStderr Sink = "stderr"
	SinkFile   Sink = "file"
	SinkNone   Sink = "none"
)

const (
	EnvLogLevel  = "TPS_LOG_LEVEL"
	EnvLogFormat = "TPS_LOG_FORMAT"
	EnvLogSink   = "TPS_LOG_SINK"
	EnvLogFile   = "TPS_LOG_FILE"
)

// Config is the [log] table of the tps config file. Pointer fields
// distinguish "unset" from explicit values so env and file settings merge.
type Config struct {
	Level  *string `toml:"level,omitempty"`
	Format *string `toml:"format,omitempty"`
	Sink   *string `toml:"sink,omitempty"`
	File   *string `toml:"file,omitempty"`

	MaxSizeMB  *int  `toml:"max_size_mb,omitempty"`
	MaxBackups *int  `toml:"max_backups,omitempty"`
	MaxAgeDays *int  `toml:"max_age_days,omitempty"`
	Compress   *bool `toml:"compress,omitempty"`
}

// DefaultConfig is quiet: a CLI should not chat on stderr unless asked.
func DefaultConfig() Config {
	level := "warn"
	format := string(FormatText)
	sink := string(SinkStderr)
	maxSizeMB := 10
	maxBackups := 3
	maxAgeDays := 7
	compress := true
	return Config{
		Level:      &level,
		Format:     &format,
		Sink:       &sink,
		MaxSizeMB:  &maxSizeMB,
		MaxBackups: &maxBackups,
		MaxAgeDays: &maxAgeDays,
		Compress:   &compress,
	}
}

// WithEnv overlays TPS_LOG_* environment variables onto c.
func (c Config) WithEnv() Config {
	applyString := func(dst **string, env string) {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = &v
		}
	}
	applyString(&c.Level, EnvLogLevel)
	applyString(&c.Format, EnvLogFormat)
	applyString(&c.Sink, EnvLogSink)
	applyString(&c.File, EnvLogFile)
	return c
}

func merge(base, override Config) Config {
	out := base
	if override.Level != nil {
		out.Level = override.Level
	}
	if override.Format != nil {
		out.Format = override.Format
	}
	if override.Sink != nil {
		out.Sink = override.Sink
	}
	if override.File != nil {
		out.File = override.File
	}
	if override.MaxSizeMB != nil {
		out.MaxSizeMB = override.MaxSizeMB
	}
	if override.MaxBackups != nil {
		out.MaxBackups = override.MaxBackups
	}
	if override.MaxAgeDays != nil {
		out.MaxAgeDays = override.MaxAgeDays
	}
	if override.Compress != nil {
		out.Compress = override.Compress
	}
	return out
}

func parseLevel(value *string) slog.Level {
	if value == nil {
		return slog.LevelWarn
	}
	switch strings.ToLower(strings.TrimSpace(*value)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		if parsed, err := strconv.Atoi(*value); err == nil {
			return slog.Level(parsed)
		}
		return slog.LevelWarn
	}
}
