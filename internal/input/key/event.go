package key

import (
	"strings"
	"unicode"
)

// Event is a single key press. Events are comparable and can be used as
// map keys once normalized.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// NewRuneEvent creates a normalized event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}.Normalize()
}

// NewSpecialEvent creates an event for a non-character key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// Normalize returns the canonical form of e. Shift is folded into the
// character of rune events, and Ctrl or Alt chords use the lowercase
// character.
func (e Event) Normalize() Event {
	if e.Key != KeyRune {
		e.Rune = 0
		return e
	}
	e.Modifiers = e.Modifiers.Without(ModShift)
	if e.Modifiers.Has(ModCtrl) || e.Modifiers.Has(ModAlt) {
		e.Rune = unicode.ToLower(e.Rune)
	}
	return e
}

// IsRune reports whether e is a character key.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsPlainRune reports whether e is a character typed without Ctrl, Alt or
// Meta.
func (e Event) IsPlainRune() bool {
	return e.IsRune() && e.Modifiers.Without(ModShift) == ModNone
}

// String returns the canonical specification of e, which Parse accepts.
// Examples: "f", "Space", "Ctrl+L", "Alt+Enter".
func (e Event) String() string {
	var b strings.Builder
	if mods := e.Modifiers.String(); mods != "" {
		b.WriteString(mods)
		b.WriteByte('+')
	}

	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		b.WriteString("Space")
	case e.Key == KeyRune && e.Rune == '+':
		b.WriteString("Plus")
	case e.Key == KeyRune && (e.Modifiers.Has(ModCtrl) || e.Modifiers.Has(ModAlt)):
		b.WriteRune(unicode.ToUpper(e.Rune))
	case e.Key == KeyRune:
		b.WriteRune(e.Rune)
	default:
		b.WriteString(e.Key.String())
	}
	return b.String()
}

// Matches reports whether e is the key described by spec.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Normalize() == parsed
}
