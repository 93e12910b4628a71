// Package ueb implements Unified English Braille, Grade 1 (uncontracted).
//
// Letters, the ten digit patterns used after a number sign, common
// punctuation, and the capital and typeform indicators are supported.
// Typeform indicators are two cells: a prefix naming the typeform (italic
// dots 46, bold dots 45, underline dots 456, script dot 4) followed by a
// cell naming the extent:
//
//	dots 23    symbol
//	dot 2      word
//	dots 2356  passage
//	dot 3      terminator
//
// A capital sign followed by another capital sign is a capitals word
// indicator; followed by dot 3 it terminates capitals.
package ueb
