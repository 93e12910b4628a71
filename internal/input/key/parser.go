package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification into a normalized Event.
//
// Supported formats:
//   - Single character: "f", ";", "1"
//   - Named keys: "Enter", "Esc", "Backspace", "Space", "F1"
//   - With modifiers: "Ctrl+L", "Alt+Enter", "Ctrl+Shift+Tab"
//   - Vim-style: "<C-l>", "<A-CR>", "<Space>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseChord(spec[1:len(spec)-1], "-")
	}

	// A lone "+" or a trailing "++" names the plus key itself.
	if spec != "+" && strings.Contains(spec, "+") {
		return parseChord(spec, "+")
	}

	return parseKey(spec, ModNone)
}

// parseChord parses modifiers and a key joined by sep.
func parseChord(spec, sep string) (Event, error) {
	parts := strings.Split(spec, sep)
	keyPart := parts[len(parts)-1]
	mods := parts[:len(parts)-1]

	// "Ctrl++" splits into a trailing empty pair.
	if keyPart == "" && len(mods) > 0 && mods[len(mods)-1] == "" {
		keyPart = sep
		mods = mods[:len(mods)-1]
	}

	var m Modifier
	for _, p := range mods {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		m = m.With(mod)
	}
	return parseKey(keyPart, m)
}

// parseKey parses a key name or single character.
func parseKey(part string, mods Modifier) (Event, error) {
	part = strings.TrimSpace(part)
	if part == "" {
		return Event{}, fmt.Errorf("%w: missing key", ErrInvalidSpec)
	}

	if k := KeyFromName(part); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	if r, ok := runeNameMap[strings.ToLower(part)]; ok {
		return NewRuneEvent(r, mods), nil
	}

	runes := []rune(part)
	if len(runes) == 1 {
		return NewRuneEvent(runes[0], mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, part)
}

// MustParse is like Parse but panics on error. Use only for known-valid
// specs in initialization code.
func MustParse(spec string) Event {
	e, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return e
}
