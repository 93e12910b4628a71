// Package config loads dotwriter's configuration.
//
// Settings are resolved from four layers, each overriding the one below:
//
//	┌─────────────────────────────┐
//	│  4. Command-line flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. DOTWRITER_* variables   │
//	├─────────────────────────────┤
//	│  2. Config file             │  ← ~/.config/dotwriter/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The file may be TOML or YAML. A minimal TOML file:
//
//	[editor]
//	mode = "ueb1"
//	layout = "sixkey"
//
//	[keys]
//	quit = "Ctrl+C"
//
//	[layouts.dvorak]
//	name = "Dvorak home row"
//	keys = "uoehtn"
//
// Watch reloads the file when it changes.
package config
