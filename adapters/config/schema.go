package config

import (
	"log/slog"

	"go.trai.ch/seam/domain"
)

// Settings is the parsed seam.yaml configuration.
type Settings struct {
	Cache     CacheSettings     `yaml:"cache"`
	Log       LogSettings       `yaml:"log"`
	Telemetry TelemetrySettings `yaml:"telemetry"`
}

// CacheSettings controls the per-model view cache.
type CacheSettings struct {
	Enabled bool `yaml:"enabled"`
}

// LogSettings controls log output.
type LogSettings struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// TelemetrySettings controls span recording.
type TelemetrySettings struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultSettings returns the settings used when seam.yaml is absent or
// leaves fields unset.
func DefaultSettings() Settings {
	return Settings{
		Cache: CacheSettings{Enabled: true},
		Log:   LogSettings{Level: "info"},
	}
}

// ParseLevel maps a configured level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, domain.ErrInvalidLogLevel
	}
}
