package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// loadOptions holds the non-file sources for Load.
type loadOptions struct {
	environ   []string
	useEnv    bool
	overrides map[string]any
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithEnviron reads environment overrides from env instead of
// os.Environ. A nil slice disables environment overrides.
func WithEnviron(env []string) LoadOption {
	return func(o *loadOptions) {
		o.environ = env
		o.useEnv = env != nil
	}
}

// WithOverride sets a dotted setting path, for example "editor.mode",
// above every other source. Empty values are ignored so that unset
// command-line flags do not mask the file.
func WithOverride(path, value string) LoadOption {
	return func(o *loadOptions) {
		if value == "" {
			return
		}
		if o.overrides == nil {
			o.overrides = make(map[string]any)
		}
		setByPath(o.overrides, path, value)
	}
}

// Load builds the configuration from built-in defaults, the file at path,
// DOTWRITER_* environment variables and explicit overrides, in increasing
// order of precedence. A missing file is not an error; an empty path
// skips the file layer.
func Load(path string, opts ...LoadOption) (*Config, error) {
	o := loadOptions{environ: os.Environ(), useEnv: true}
	for _, opt := range opts {
		opt(&o)
	}

	merged, err := toMap(Default())
	if err != nil {
		return nil, err
	}

	source := ""
	if path != "" {
		file, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if file != nil {
			source = path
			merged = DeepMerge(merged, file)
		}
	}

	if o.useEnv {
		merged = DeepMerge(merged, NewEnvLoader(EnvPrefix, o.environ).Load())
	}
	merged = DeepMerge(merged, o.overrides)

	cfg, err := fromMap(merged)
	if err != nil {
		return nil, err
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a TOML or YAML file into a map, choosing the format by
// extension. It returns nil, nil if the file does not exist.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return parseTOML(path, data)
	case ".yaml", ".yml":
		return parseYAML(path, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func parseTOML(source string, data []byte) (map[string]any, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}
	return m, nil
}

func parseYAML(source string, data []byte) (map[string]any, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return pruneNil(m), nil
}

// toMap converts a Config into its generic map form.
func toMap(c *Config) (map[string]any, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return m, nil
}

// fromMap decodes a merged map into a Config.
func fromMap(m map[string]any) (*Config, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	cfg := &Config{}
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if cfg.Keys == nil {
		cfg.Keys = map[string]string{}
	}
	if cfg.Layouts == nil {
		cfg.Layouts = map[string]LayoutConfig{}
	}
	return cfg, nil
}

// DeepMerge recursively merges src into dst.
// Values in src override values in dst.
// Maps are merged recursively; other types are replaced.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	for key, srcVal := range src {
		srcMap, srcIsMap := srcVal.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = DeepMerge(dstMap, srcMap)
			continue
		}
		dst[key] = srcVal
	}
	return dst
}

// pruneNil drops null values, which YAML produces for empty keys.
func pruneNil(m map[string]any) map[string]any {
	for k, v := range m {
		switch v := v.(type) {
		case nil:
			delete(m, k)
		case map[string]any:
			m[k] = pruneNil(v)
		}
	}
	return m
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
