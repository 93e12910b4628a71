package cell

import (
	"strconv"
	"strings"
)

// Code is a six-dot braille cell. Bit i is set when dot i+1 is raised.
type Code uint8

const (
	// Blank is the empty cell, used for the space between words.
	Blank Code = 0

	// MaxCode is the largest valid cell code (all six dots raised).
	MaxCode Code = 63

	// GlyphBase is the first code point of the Unicode braille block.
	GlyphBase rune = 0x2800

	// MinDot and MaxDot bound the dot numbers of a six-dot cell.
	MinDot = 1
	MaxDot = 6
)

// DotsToCode ORs together the bit for every dot. Dots outside 1-6 are ignored.
func DotsToCode(dots ...int) Code {
	var c Code
	for _, d := range dots {
		if d < MinDot || d > MaxDot {
			continue
		}
		c |= 1 << (d - 1)
	}
	return c
}

// CodeToDots returns the raised dots of c in ascending order.
func CodeToDots(c Code) []int {
	dots := make([]int, 0, MaxDot)
	for d := MinDot; d <= MaxDot; d++ {
		if c&(1<<(d-1)) != 0 {
			dots = append(dots, d)
		}
	}
	return dots
}

// Glyph returns the Unicode braille character for c (U+2800 + c).
func Glyph(c Code) rune {
	return GlyphBase + rune(c&MaxCode)
}

// FromGlyph is the inverse of Glyph.
// It returns false for runes outside U+2800..U+283F.
func FromGlyph(r rune) (Code, bool) {
	if r < GlyphBase || r > GlyphBase+rune(MaxCode) {
		return 0, false
	}
	return Code(r - GlyphBase), true
}

// Valid reports whether c fits in six bits.
func (c Code) Valid() bool {
	return c <= MaxCode
}

// Has reports whether dot d is raised in c.
func (c Code) Has(d int) bool {
	if d < MinDot || d > MaxDot {
		return false
	}
	return c&(1<<(d-1)) != 0
}

// Glyph returns the braille character for c.
func (c Code) Glyph() rune {
	return Glyph(c)
}

// String returns the braille character for c.
func (c Code) String() string {
	return string(Glyph(c))
}

// DotString returns a label such as "1-2-5", or "-" for the blank cell.
func DotString(c Code) string {
	dots := CodeToDots(c)
	if len(dots) == 0 {
		return "-"
	}
	parts := make([]string, len(dots))
	for i, d := range dots {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "-")
}

// Codes decodes every braille glyph in s, skipping anything else
// (such as newlines).
func Codes(s string) []Code {
	codes := make([]Code, 0, len(s)/3)
	for _, r := range s {
		if c, ok := FromGlyph(r); ok {
			codes = append(codes, c)
		}
	}
	return codes
}
