package ueb

import (
	"github.com/dshills/dotwriter/internal/braille/cell"
	"github.com/dshills/dotwriter/internal/braille/mode"
)

// Indicator sign codes.
const (
	NumberSign     cell.Code = 0x3c // dots 3456
	CapitalSign    cell.Code = 0x20 // dot 6
	ContinuousCaps cell.Code = 0x30 // dots 56
	LetterSign     cell.Code = 0x10 // dot 5
)

// Typeform prefix codes. Each begins a two-cell indicator.
const (
	ItalicPrefix    cell.Code = 0x28 // dots 46
	BoldPrefix      cell.Code = 0x18 // dots 45
	UnderlinePrefix cell.Code = 0x38 // dots 456
	ScriptPrefix    cell.Code = 0x08 // dot 4
)

// Second cells of typeform indicators. The terminator cell also ends a
// capitals word.
const (
	symbolCell     cell.Code = 0x06 // dots 23
	wordCell       cell.Code = 0x02 // dot 2
	passageCell    cell.Code = 0x36 // dots 2356
	terminatorCell cell.Code = 0x04 // dot 3
)

// QuestionOrQuote is dots 236: an opening quote at the start of a word,
// otherwise a question mark.
const QuestionOrQuote cell.Code = 0x26

// Unknown is the text for a cell with no meaning in this mode.
const Unknown = "?"

var alphabet = map[cell.Code]string{
	0x01: "a", 0x03: "b", 0x09: "c", 0x19: "d", 0x11: "e",
	0x0b: "f", 0x1b: "g", 0x13: "h", 0x0a: "i", 0x1a: "j",
	0x05: "k", 0x07: "l", 0x0d: "m", 0x1d: "n", 0x15: "o",
	0x0f: "p", 0x1f: "q", 0x17: "r", 0x0e: "s", 0x1e: "t",
	0x25: "u", 0x27: "v", 0x3a: "w", 0x2d: "x", 0x3d: "y",
	0x35: "z",
}

// digits maps the letter patterns a-j to 1-9,0 in number mode.
var digits = map[cell.Code]string{
	0x01: "1", 0x03: "2", 0x09: "3", 0x19: "4", 0x11: "5",
	0x0b: "6", 0x1b: "7", 0x13: "8", 0x0a: "9", 0x1a: "0",
}

var punctuation = map[cell.Code]string{
	0x02: ",",
	0x06: ";",
	0x12: ":",
	0x32: ".",
	0x16: "!",
	0x04: "'",
	0x24: "-",
	0x2e: "/",
	0x28: "\"",
	0x1c: ")",
}

// signs are the bare indicator signs. They are echoed as their glyph when
// read alone and commit no print text.
var signs = map[cell.Code]bool{
	NumberSign:     true,
	CapitalSign:    true,
	ContinuousCaps: true,
	LetterSign:     true,
}

// contextRule picks between variants of a context-dependent cell.
type contextRule func(ctx mode.Context) string

var contextDependent = map[cell.Code]contextRule{
	QuestionOrQuote: func(ctx mode.Context) string {
		switch ctx.LastText() {
		case "", " ", "\n":
			return "\""
		}
		return "?"
	},
}

// Indicator names.
const (
	CapitalLetter     = "capital-letter"
	CapitalWord       = "capital-word"
	CapitalPassage    = "capital-passage"
	CapitalTerminator = "capital-terminator"

	ItalicSymbol     = "italic-symbol"
	ItalicWord       = "italic-word"
	ItalicPassage    = "italic-passage"
	ItalicTerminator = "italic-terminator"

	BoldSymbol     = "bold-symbol"
	BoldWord       = "bold-word"
	BoldPassage    = "bold-passage"
	BoldTerminator = "bold-terminator"

	UnderlineSymbol     = "underline-symbol"
	UnderlineWord       = "underline-word"
	UnderlinePassage    = "underline-passage"
	UnderlineTerminator = "underline-terminator"

	ScriptSymbol     = "script-symbol"
	ScriptWord       = "script-word"
	ScriptPassage    = "script-passage"
	ScriptTerminator = "script-terminator"
)

func newIndicator(t mode.IndicatorType, a mode.IndicatorAction, codes ...cell.Code) mode.Indicator {
	display := make([]rune, len(codes))
	for i, c := range codes {
		display[i] = cell.Glyph(c)
	}
	return mode.Indicator{
		Codes:   codes,
		Display: string(display),
		Type:    t,
		Action:  a,
	}
}

// buildIndicators returns the full catalogue, including entries that are
// not reachable as two-cell sequences.
func buildIndicators() map[string]mode.Indicator {
	ind := map[string]mode.Indicator{
		CapitalLetter:     newIndicator(mode.IndicatorCapital, mode.ActionSymbol, CapitalSign),
		CapitalWord:       newIndicator(mode.IndicatorCapital, mode.ActionWord, CapitalSign, CapitalSign),
		CapitalPassage:    newIndicator(mode.IndicatorCapital, mode.ActionPassage, CapitalSign, CapitalSign, CapitalSign),
		CapitalTerminator: newIndicator(mode.IndicatorCapital, mode.ActionEnd, CapitalSign, terminatorCell),
	}

	typeforms := []struct {
		prefix                         cell.Code
		typ                            mode.IndicatorType
		symbol, word, passage, closing string
	}{
		{ItalicPrefix, mode.IndicatorItalic, ItalicSymbol, ItalicWord, ItalicPassage, ItalicTerminator},
		{BoldPrefix, mode.IndicatorBold, BoldSymbol, BoldWord, BoldPassage, BoldTerminator},
		{UnderlinePrefix, mode.IndicatorUnderline, UnderlineSymbol, UnderlineWord, UnderlinePassage, UnderlineTerminator},
		{ScriptPrefix, mode.IndicatorScript, ScriptSymbol, ScriptWord, ScriptPassage, ScriptTerminator},
	}
	for _, tf := range typeforms {
		ind[tf.symbol] = newIndicator(tf.typ, mode.ActionSymbol, tf.prefix, symbolCell)
		ind[tf.word] = newIndicator(tf.typ, mode.ActionWord, tf.prefix, wordCell)
		ind[tf.passage] = newIndicator(tf.typ, mode.ActionPassage, tf.prefix, passageCell)
		ind[tf.closing] = newIndicator(tf.typ, mode.ActionEnd, tf.prefix, terminatorCell)
	}
	return ind
}

type pair struct {
	first, second cell.Code
}

// buildSequences indexes the indicators that are exactly two cells long.
func buildSequences(ind map[string]mode.Indicator) (map[pair]string, map[cell.Code]bool) {
	seq := make(map[pair]string)
	prefixes := make(map[cell.Code]bool)
	for name, in := range ind {
		if len(in.Codes) != 2 {
			continue
		}
		seq[pair{in.Codes[0], in.Codes[1]}] = name
		prefixes[in.Codes[0]] = true
	}
	return seq, prefixes
}
