package mode

import (
	"github.com/dshills/dotwriter/internal/braille/cell"
)

// Mode defines a braille convention: its tables, how a cell reads in
// context, and the state machine carried from cell to cell.
//
// Implementations must be immutable; every method is a pure function of
// its arguments.
type Mode interface {
	// Info returns the identifier and display metadata.
	Info() Info

	// CodeToText returns the print text for a single cell read in ctx.
	CodeToText(code cell.Code, ctx Context) string

	// Alphabet returns a copy of the letter table.
	Alphabet() map[cell.Code]string

	// NumberMap returns a copy of the digit table used in number mode.
	NumberMap() map[cell.Code]string

	// Indicators returns a copy of the indicator catalogue keyed by name.
	Indicators() map[string]Indicator

	// PrefixCodes returns, in ascending order, the codes that can begin a
	// two-cell indicator.
	PrefixCodes() []cell.Code

	// IsPrefix reports whether code can begin a two-cell indicator.
	IsPrefix(code cell.Code) bool

	// ResolveSequence looks up the ordered pair (first, second).
	// It returns false when the pair is not a registered indicator.
	ResolveSequence(first, second cell.Code, ctx Context) (Sequence, bool)

	// IsSilent reports whether code is a bare indicator sign. Such cells
	// are committed to the braille stream with no print text.
	IsSilent(code cell.Code) bool

	// InitialState returns the state of an empty document.
	InitialState() State

	// UpdateState returns the state after committing code as a single cell
	// that produced text.
	UpdateState(s State, code cell.Code, text string) State

	// ApplyIndicator returns the state after a resolved two-cell indicator.
	ApplyIndicator(s State, name string) State
}

// NumberRecomputer is implemented by modes that can re-derive number mode
// alone from a braille stream, by scanning back to the nearest number sign
// or blank cell.
type NumberRecomputer interface {
	RecomputeNumber(braille []cell.Code) State
}

// CapitalCycler is implemented by modes that let the host step the capital
// mode directly: off, next letter, all caps, off.
type CapitalCycler interface {
	CycleCapital(s State) State
}

// State is the interpretation context carried between cells. It is owned
// by a Mode and must be treated as an immutable value.
type State interface {
	Status() Status
}

// Context is what a Mode sees when it interprets a cell.
type Context struct {
	// PrecedingText is the committed print text.
	PrecedingText string

	// PrecedingBraille is the committed braille text.
	PrecedingBraille string

	// State is the current mode state.
	State State
}

// LastText returns the final character of the committed print text, or
// the empty string at the start of a document.
func (c Context) LastText() string {
	if c.PrecedingText == "" {
		return ""
	}
	r := []rune(c.PrecedingText)
	return string(r[len(r)-1])
}

// Info describes a mode for selectors and status lines.
type Info struct {
	ID          string
	Name        string
	Description string
	Language    string
}

// Indicator is one entry in a mode's indicator catalogue.
type Indicator struct {
	// Codes is the cell sequence, first cell first.
	Codes []cell.Code

	// Display is the text committed for the indicator.
	Display string

	Type   IndicatorType
	Action IndicatorAction
}

// Sequence is a resolved two-cell indicator.
type Sequence struct {
	Name   string
	Text   string
	Type   IndicatorType
	Action IndicatorAction
}
