// Package editor holds a braille editing session.
//
// An Editor composes one cell at a time from raised dots and commits it
// to two parallel streams: the braille glyphs as entered and their print
// reading under the active mode. Cells that may begin a two-cell
// indicator are held until the next cell arrives:
//
//	ed := editor.New(ueb.NewGrade1())
//	ed.AddDot(4)
//	ed.AddDot(6)
//	ed.ConfirmChar() // held: may be an italic indicator
//	ed.AddDot(2)
//	ed.AddDot(3)
//	ed.ConfirmChar() // italic symbol indicator
//
// Deleting a character rebuilds the mode state from what remains, so
// number, capital and typeform flags always agree with the document.
package editor
