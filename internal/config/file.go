package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/termdesk/internal/app"
	"github.com/atomicstack/termdesk/internal/state"
)

// DefaultFileName is the conventional name of the desktop file.
const DefaultFileName = "desktop.yaml"

// File is the optional desktop.yaml. Unset fields keep their defaults.
type File struct {
	API      FileAPI      `yaml:"api"`
	User     FileUser     `yaml:"user"`
	Launcher FileLauncher `yaml:"launcher"`
}

type FileAPI struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type FileUser struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

type FileLauncher struct {
	Jitter FileJitter  `yaml:"jitter"`
	Window *state.Size `yaml:"window"`
}

type FileJitter struct {
	Base *state.Point `yaml:"base"`
	Span *state.Point `yaml:"span"`
}

// LoadFile reads and decodes a desktop file. Unknown keys are rejected so
// typos do not pass silently.
func LoadFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()
	var out File
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
	}
	return out, nil
}

// apply copies the launcher and timeout settings the file sets onto cfg.
func (f File) apply(cfg *app.Config) {
	if f.API.Timeout > 0 {
		cfg.APITimeout = f.API.Timeout
	}
	if f.Launcher.Jitter.Base != nil {
		cfg.JitterBase = *f.Launcher.Jitter.Base
	}
	if f.Launcher.Jitter.Span != nil {
		cfg.JitterSpan = *f.Launcher.Jitter.Span
	}
	if f.Launcher.Window != nil {
		cfg.WindowSize = *f.Launcher.Window
	}
}
