package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dshills/dotwriter/internal/input/key"
	"github.com/dshills/dotwriter/internal/layout"
)

// AppName names the per-user config and state directory.
const AppName = "dotwriter"

// Key binding actions configurable under [keys].
const (
	ActionConfirm      = "confirm"
	ActionDelete       = "delete"
	ActionReset        = "reset"
	ActionNewline      = "newline"
	ActionClear        = "clear"
	ActionCycleLayout  = "cycle_layout"
	ActionCycleMode    = "cycle_mode"
	ActionCycleCapital = "cycle_capital"
	ActionCopyBraille  = "copy_braille"
	ActionCopyText     = "copy_text"
	ActionQuit         = "quit"
)

// Actions lists every bindable action in display order.
var Actions = []string{
	ActionConfirm,
	ActionDelete,
	ActionReset,
	ActionNewline,
	ActionClear,
	ActionCycleLayout,
	ActionCycleMode,
	ActionCycleCapital,
	ActionCopyBraille,
	ActionCopyText,
	ActionQuit,
}

// Recompute policies accepted by editor.recompute.
const (
	RecomputeReplay = "replay"
	RecomputeNumber = "number"
)

// Config is the resolved application configuration.
type Config struct {
	Editor  EditorConfig            `toml:"editor" yaml:"editor"`
	Logging LoggingConfig           `toml:"logging" yaml:"logging"`
	Storage StorageConfig           `toml:"storage" yaml:"storage"`
	Keys    map[string]string       `toml:"keys" yaml:"keys"`
	Layouts map[string]LayoutConfig `toml:"layouts" yaml:"layouts"`

	// Source is the file the configuration was read from, if any.
	Source string `toml:"-" yaml:"-"`
}

// EditorConfig holds the editing defaults.
type EditorConfig struct {
	// Mode is the braille mode used when no preference is stored.
	Mode string `toml:"mode" yaml:"mode"`
	// Layout is the keyboard layout used when no preference is stored.
	Layout string `toml:"layout" yaml:"layout"`
	// Recompute selects how state is rebuilt after a deletion.
	Recompute string `toml:"recompute" yaml:"recompute"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`
	// File receives log output. Empty disables logging, since the
	// terminal is owned by the UI.
	File string `toml:"file" yaml:"file"`
}

// StorageConfig configures preference persistence.
type StorageConfig struct {
	// Path is the preference database. Empty disables persistence.
	Path string `toml:"path" yaml:"path"`
}

// LayoutConfig describes a custom keyboard layout.
type LayoutConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Description string `toml:"description" yaml:"description"`
	// Keys holds six keys for dots 1-6, for example "fdsjkl".
	Keys string `toml:"keys" yaml:"keys"`
}

// DefaultKeys returns the built-in key bindings.
func DefaultKeys() map[string]string {
	return map[string]string{
		ActionConfirm:      "Space",
		ActionDelete:       "Backspace",
		ActionReset:        "Esc",
		ActionNewline:      "Enter",
		ActionClear:        "Ctrl+L",
		ActionCycleLayout:  "Ctrl+K",
		ActionCycleMode:    "Ctrl+N",
		ActionCycleCapital: "Ctrl+U",
		ActionCopyBraille:  "Ctrl+B",
		ActionCopyText:     "Ctrl+T",
		ActionQuit:         "Ctrl+Q",
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			Mode:      "ueb1",
			Layout:    layout.Default,
			Recompute: RecomputeReplay,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Path: DefaultStatePath(),
		},
		Keys:    DefaultKeys(),
		Layouts: map[string]LayoutConfig{},
	}
}

// Dir returns the per-user configuration directory, or "" if it cannot be
// determined.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, AppName)
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// DefaultStatePath returns the default preference database path.
func DefaultStatePath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "state.db")
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	switch c.Editor.Recompute {
	case RecomputeReplay, RecomputeNumber:
	default:
		errs = append(errs, &ValidationError{
			Path:    "editor.recompute",
			Value:   c.Editor.Recompute,
			Message: "must be replay or number",
		})
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, &ValidationError{
			Path:    "logging.level",
			Value:   c.Logging.Level,
			Message: "must be debug, info, warn or error",
		})
	}

	known := make(map[string]bool, len(Actions))
	for _, a := range Actions {
		known[a] = true
	}
	for _, action := range sortedKeys(c.Keys) {
		spec := c.Keys[action]
		path := "keys." + action
		if !known[action] {
			errs = append(errs, &ValidationError{Path: path, Value: spec, Message: "unknown action"})
			continue
		}
		if strings.TrimSpace(spec) == "" {
			continue
		}
		if _, err := key.Parse(spec); err != nil {
			errs = append(errs, &ValidationError{Path: path, Value: spec, Message: err.Error()})
		}
	}

	if _, err := c.CustomLayouts(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// CustomLayouts builds the layouts defined under [layouts], ordered by id.
func (c *Config) CustomLayouts() ([]layout.Layout, error) {
	var (
		out  []layout.Layout
		errs []error
	)
	for _, id := range sortedKeys(c.Layouts) {
		lc := c.Layouts[id]
		name := lc.Name
		if name == "" {
			name = id
		}
		l, err := layout.New(id, name, lc.Description, lc.Keys)
		if err != nil {
			errs = append(errs, &ValidationError{
				Path:    "layouts." + id + ".keys",
				Value:   lc.Keys,
				Message: err.Error(),
			})
			continue
		}
		out = append(out, l)
	}
	return out, errors.Join(errs...)
}

// Bindings parses the key bindings. Actions without a binding are left
// out.
func (c *Config) Bindings() (map[string]key.Event, error) {
	out := make(map[string]key.Event, len(c.Keys))
	for _, action := range sortedKeys(c.Keys) {
		spec := strings.TrimSpace(c.Keys[action])
		if spec == "" {
			continue
		}
		ev, err := key.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("keys.%s: %w", action, err)
		}
		out[action] = ev
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
