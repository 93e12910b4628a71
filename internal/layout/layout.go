package layout

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/dotwriter/internal/braille/cell"
)

// Layout errors.
var (
	ErrInvalidLayout   = errors.New("invalid layout")
	ErrUnknownLayout   = errors.New("unknown layout")
	ErrDuplicateLayout = errors.New("layout already registered")
)

// Layout maps six keyboard keys to braille dots 1-6, the way a Perkins
// brailler maps its six keys.
type Layout struct {
	ID          string
	Name        string
	Description string

	// Keys holds the key for each dot: Keys[0] is dot 1.
	Keys [cell.MaxDot]rune
}

// New creates a layout from a six-character key string, for example
// "fdsjkl". Keys are stored in lower case.
func New(id, name, description, keys string) (Layout, error) {
	l := Layout{ID: id, Name: name, Description: description}
	runes := []rune(keys)
	if len(runes) != cell.MaxDot {
		return Layout{}, fmt.Errorf("%w: %s: need %d keys, got %d", ErrInvalidLayout, id, cell.MaxDot, len(runes))
	}
	for i, r := range runes {
		l.Keys[i] = unicode.ToLower(r)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate reports whether the layout has an id and six distinct
// printable keys.
func (l Layout) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidLayout)
	}
	seen := make(map[rune]int, len(l.Keys))
	for i, r := range l.Keys {
		if r == 0 || r == ' ' || !unicode.IsPrint(r) {
			return fmt.Errorf("%w: %s: dot %d has no usable key", ErrInvalidLayout, l.ID, i+1)
		}
		if prev, ok := seen[r]; ok {
			return fmt.Errorf("%w: %s: key %q used for dots %d and %d", ErrInvalidLayout, l.ID, r, prev, i+1)
		}
		seen[r] = i + 1
	}
	return nil
}

// Dot returns the dot bound to r, ignoring case.
func (l Layout) Dot(r rune) (int, bool) {
	r = unicode.ToLower(r)
	for i, k := range l.Keys {
		if k == r {
			return i + 1, true
		}
	}
	return 0, false
}

// Key returns the key bound to dot d.
func (l Layout) Key(d int) (rune, bool) {
	if d < cell.MinDot || d > cell.MaxDot {
		return 0, false
	}
	return l.Keys[d-1], true
}

// KeyString returns the keys in dot order, for example "fdsjkl".
func (l Layout) KeyString() string {
	return string(l.Keys[:])
}

// Hint returns a short reminder of the bindings, left hand then right
// hand: "f d s | j k l".
func (l Layout) Hint() string {
	var b strings.Builder
	for i, k := range l.Keys {
		switch {
		case i == 3:
			b.WriteString(" | ")
		case i > 0:
			b.WriteByte(' ')
		}
		b.WriteRune(k)
	}
	return b.String()
}
