// Package config provides the seam.yaml settings loader and its live
// reload watcher.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/seam/domain"
	"go.trai.ch/seam/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file searched for from the working directory
// upward.
const FileName = "seam.yaml"

// Loader reads Settings from a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Discover walks up from cwd until it finds a seam.yaml, returning its
// path or domain.ErrConfigNotFound.
func (l *Loader) Discover(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "resolving working directory")
	}

	for {
		candidate := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, ""), "cwd", cwd)
		}
		currentDir = parent
	}
}

// Load discovers and parses the settings file reachable from cwd. When no
// file exists the defaults are returned without error.
func (l *Loader) Load(cwd string) (Settings, error) {
	path, err := l.Discover(cwd)
	if err != nil {
		if errors.Is(err, domain.ErrConfigNotFound) {
			if l.Logger != nil {
				l.Logger.Debug("no seam.yaml found, using defaults")
			}
			return DefaultSettings(), nil
		}
		return Settings{}, err
	}
	return l.LoadFile(path)
}

// LoadFile parses the settings file at path. Fields absent from the file
// keep their default values.
func (l *Loader) LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, zerr.Wrap(err, "reading settings file")
	}
	return parse(data)
}

func parse(data []byte) (Settings, error) {
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, zerr.Wrap(err, "parsing settings file")
	}
	if _, err := ParseLevel(settings.Log.Level); err != nil {
		return Settings{}, zerr.With(zerr.Wrap(err, ""), "level", settings.Log.Level)
	}
	return settings, nil
}
