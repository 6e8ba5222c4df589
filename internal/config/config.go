// Package config loads the optional config.yaml that lives next to the todo database.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"todo-cli/internal/store"
)

const (
	fileName = "config.yaml"

	// EnvTheme overrides tui.theme without touching the file.
	EnvTheme = "TODO_TUI_THEME"

	DefaultRefreshMs = 250
	minRefreshMs     = 50
)

// Config represents the user configuration.
type Config struct {
	TUI TUIConfig `yaml:"tui"`
}

type TUIConfig struct {
	// Theme is one of: auto|light|dark
	Theme string `yaml:"theme,omitempty"`
	// Glyphs is one of: unicode|ascii
	Glyphs string `yaml:"glyphs,omitempty"`
	// RefreshMs is the reload tick interval.
	RefreshMs int `yaml:"refresh_ms,omitempty"`
	// Markdown renders todo descriptions as markdown in the details panel.
	Markdown *bool `yaml:"markdown,omitempty"`
	// NoColor is set from NO_COLOR; never read from the file.
	NoColor bool `yaml:"-"`
}

func Default() *Config {
	md := true
	return &Config{TUI: TUIConfig{
		Theme:     "auto",
		Glyphs:    "unicode",
		RefreshMs: DefaultRefreshMs,
		Markdown:  &md,
	}}
}

func Path(dir string) string {
	return filepath.Join(dir, fileName)
}

// Load reads <dir>/config.yaml. A missing file yields the defaults; a malformed one is an error.
func Load(dir string) (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(Path(dir))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		var fromFile Config
		if err := yaml.Unmarshal(b, &fromFile); err != nil {
			return nil, fmt.Errorf("parse %s: %w", Path(dir), err)
		}
		cfg.merge(fromFile)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", Path(dir), err)
	}
	return cfg, nil
}

// LoadOrCreate is Load, but first writes the defaults to <dir>/config.yaml when
// no file exists yet, so there is something to edit after the first launch.
func LoadOrCreate(dir string) (*Config, error) {
	if _, err := os.Stat(Path(dir)); errors.Is(err, os.ErrNotExist) {
		if err := Default().Save(dir); err != nil {
			return nil, fmt.Errorf("write default %s: %w", Path(dir), err)
		}
	}
	return Load(dir)
}

// Save writes the config atomically.
func (c *Config) Save(dir string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return store.AtomicWriteFile(Path(dir), b, 0o644)
}

func (c *Config) Validate() error {
	switch c.TUI.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("tui.theme: invalid value %q (want auto|light|dark)", c.TUI.Theme)
	}
	switch c.TUI.Glyphs {
	case "unicode", "ascii":
	default:
		return fmt.Errorf("tui.glyphs: invalid value %q (want unicode|ascii)", c.TUI.Glyphs)
	}
	if c.TUI.RefreshMs < minRefreshMs {
		return fmt.Errorf("tui.refresh_ms: must be at least %d", minRefreshMs)
	}
	return nil
}

// MarkdownEnabled reports whether descriptions should go through glamour.
func (c *Config) MarkdownEnabled() bool {
	return c.TUI.Markdown == nil || *c.TUI.Markdown
}

func (c *Config) merge(o Config) {
	if v := strings.ToLower(strings.TrimSpace(o.TUI.Theme)); v != "" {
		c.TUI.Theme = v
	}
	if v := strings.ToLower(strings.TrimSpace(o.TUI.Glyphs)); v != "" {
		c.TUI.Glyphs = v
	}
	if o.TUI.RefreshMs != 0 {
		c.TUI.RefreshMs = o.TUI.RefreshMs
	}
	if o.TUI.Markdown != nil {
		md := *o.TUI.Markdown
		c.TUI.Markdown = &md
	}
}

func (c *Config) applyEnv() {
	if v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvTheme))); v != "" {
		c.TUI.Theme = v
	}
	// https://no-color.org: any non-empty value disables color.
	if os.Getenv("NO_COLOR") != "" {
		c.TUI.NoColor = true
	}
}
