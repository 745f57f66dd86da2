// Package config provides the configuration loader for mmd.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/mmd/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader resolves settings from an optional mmd.yaml file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load searches upward from cwd for an mmd.yaml file and returns the
// resolved settings. A missing file is not an error: the defaults apply.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	configPath, found := l.findConfiguration(cwd)
	if !found {
		return settings, nil
	}

	//nolint:gosec // Path located by upward directory search from cwd
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	if err := apply(settings, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return settings, nil
}

// findConfiguration walks from cwd to the filesystem root looking for the
// config file, so the tool behaves the same anywhere inside a project.
func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", false
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func apply(settings *domain.Settings, file *File) error {
	if file.Tool.Name != "" {
		settings.ToolName = file.Tool.Name
	}
	if file.Tool.Path != "" {
		settings.ToolPath = file.Tool.Path
	}
	if file.Cache.Dir != "" {
		settings.CacheDir = expandHome(file.Cache.Dir)
	}

	if file.Render.Timeout != "" {
		d, err := parseDuration(file.Render.Timeout)
		if err != nil {
			return zerr.With(err, "field", "render.timeout")
		}
		settings.Timeout = d
	}

	if file.Watch.Debounce != "" {
		d, err := parseDuration(file.Watch.Debounce)
		if err != nil {
			return zerr.With(err, "field", "watch.debounce")
		}
		settings.DebounceWindow = d
	}

	return nil
}

func parseDuration(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, zerr.With(domain.ErrInvalidDuration, "value", value)
	}
	return d, nil
}

// expandHome resolves a leading "~/" against the home directory.
func expandHome(path string) string {
	if len(path) < 2 || path[0] != '~' || path[1] != filepath.Separator {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
