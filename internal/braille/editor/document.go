package editor

import (
	"unicode/utf8"

	"github.com/dshills/dotwriter/internal/braille/cell"
)

// entryKind records how a document entry was committed, so that mode state
// can be replayed after a deletion.
type entryKind uint8

const (
	// entrySingle is a cell read on its own.
	entrySingle entryKind = iota

	// entryNewline is a line break in both streams.
	entryNewline

	// entrySequenceFirst is the first cell of a resolved two-cell
	// indicator. It has no effect of its own on mode state.
	entrySequenceFirst

	// entrySequenceSecond completes a two-cell indicator and carries its
	// name.
	entrySequenceSecond

	// entryCapitalCycle records a capital mode step taken from the
	// keyboard. It adds nothing to either stream.
	entryCapitalCycle
)

// entry is one committed unit: a single cell, a newline or a zero-width
// state change.
type entry struct {
	kind      entryKind
	code      cell.Code
	glyph     string
	text      string
	indicator string
}

// document holds the two parallel streams and the entries they were
// built from. Both strings are kept in step with the entries.
type document struct {
	entries []entry
	braille string
	text    string
}

func (d *document) push(e entry) {
	d.entries = append(d.entries, e)
	d.braille += e.glyph
	d.text += e.text
}

// pop removes the last entry that shows in the streams. Zero-width
// entries after it are kept. It reports false when nothing shows.
func (d *document) pop() (entry, bool) {
	for i := len(d.entries) - 1; i >= 0; i-- {
		last := d.entries[i]
		if last.kind == entryCapitalCycle {
			continue
		}
		d.entries = append(d.entries[:i], d.entries[i+1:]...)
		d.braille = d.braille[:len(d.braille)-len(last.glyph)]
		d.text = d.text[:len(d.text)-len(last.text)]
		return last, true
	}
	return entry{}, false
}

func (d *document) reset() {
	d.entries = nil
	d.braille = ""
	d.text = ""
}

func (d *document) empty() bool {
	return d.braille == ""
}

func (d *document) brailleLen() int {
	return utf8.RuneCountInString(d.braille)
}

func (d *document) textLen() int {
	return utf8.RuneCountInString(d.text)
}

// codes returns the committed cells in order. Newlines read as blank cells.
func (d *document) codes() []cell.Code {
	codes := make([]cell.Code, 0, len(d.entries))
	for _, e := range d.entries {
		switch e.kind {
		case entryCapitalCycle:
		case entryNewline:
			codes = append(codes, cell.Blank)
		default:
			codes = append(codes, e.code)
		}
	}
	return codes
}
