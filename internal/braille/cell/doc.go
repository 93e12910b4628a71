// Package cell converts between six-dot braille cells in their three forms:
// a set of raised dot numbers, a 6-bit code, and a character from the
// Unicode braille block.
//
// The mapping to Unicode is fixed: code c is always U+2800 + c.
//
//	dots  code  glyph
//	1     0x01  ⠁
//	1,2   0x03  ⠃
//	3456  0x3c  ⠼
//
// Everything in this package is pure and safe for concurrent use.
package cell
