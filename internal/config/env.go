package config

import "strings"

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "DOTWRITER_"

// EnvConfigPath names the config file when no -config flag is given.
const EnvConfigPath = EnvPrefix + "CONFIG"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string
	environ []string
	mapping map[string]string // env var -> config path
}

// NewEnvLoader creates a loader over environ, a list of KEY=value pairs
// as returned by os.Environ.
func NewEnvLoader(prefix string, environ []string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		environ: environ,
		mapping: defaultEnvMapping(prefix),
	}
}

// defaultEnvMapping returns short names for the common settings.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "MODE":      "editor.mode",
		prefix + "LAYOUT":    "editor.layout",
		prefix + "RECOMPUTE": "editor.recompute",
		prefix + "LOG_LEVEL": "logging.level",
		prefix + "LOG_FILE":  "logging.file",
		prefix + "STATE":     "storage.path",
	}
}

// Load returns the settings found in the environment. Values are kept as
// strings. Variables without a short name map by section:
// DOTWRITER_KEYS_COPY_TEXT sets keys.copy_text.
func (l *EnvLoader) Load() map[string]any {
	config := make(map[string]any)
	for _, kv := range l.environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if path, ok := l.mapping[name]; ok {
			setByPath(config, path, value)
			continue
		}
		if path, ok := l.envToPath(name); ok {
			setByPath(config, path, value)
		}
	}
	return config
}

// envToPath converts DOTWRITER_EDITOR_MODE to editor.mode. Only flat
// sections are addressable this way.
func (l *EnvLoader) envToPath(env string) (string, bool) {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, setting, ok := strings.Cut(name, "_")
	if !ok || setting == "" {
		return "", false
	}
	switch section {
	case "editor", "logging", "storage", "keys":
		return section + "." + setting, true
	default:
		return "", false
	}
}
