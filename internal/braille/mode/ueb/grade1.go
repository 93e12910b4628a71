package ueb

import (
	"sort"
	"strings"

	"github.com/dshills/dotwriter/internal/braille/cell"
	"github.com/dshills/dotwriter/internal/braille/mode"
)

// ID is the registry identifier of the Grade 1 mode.
const ID = "ueb1"

// Grade1 is Unified English Braille, uncontracted.
type Grade1 struct {
	indicators map[string]mode.Indicator
	sequences  map[pair]string
	prefixes   map[cell.Code]bool
}

// NewGrade1 creates the UEB Grade 1 mode.
func NewGrade1() *Grade1 {
	ind := buildIndicators()
	seq, prefixes := buildSequences(ind)
	return &Grade1{
		indicators: ind,
		sequences:  seq,
		prefixes:   prefixes,
	}
}

// Info returns the mode metadata.
func (g *Grade1) Info() mode.Info {
	return mode.Info{
		ID:          ID,
		Name:        "UEB Grade 1",
		Description: "Unified English Braille Grade 1 (uncontracted)",
		Language:    "en",
	}
}

// CodeToText returns the print text for code in ctx.
func (g *Grade1) CodeToText(code cell.Code, ctx mode.Context) string {
	s := asState(ctx.State)

	if s.NumberMode {
		if d, ok := digits[code]; ok {
			return d
		}
	}

	if letter, ok := alphabet[code]; ok {
		if s.Capital != mode.CapitalOff {
			return strings.ToUpper(letter)
		}
		return letter
	}

	// Context rules take precedence over the fixed punctuation table.
	if rule, ok := contextDependent[code]; ok {
		return rule(ctx)
	}

	if p, ok := punctuation[code]; ok {
		return p
	}

	if signs[code] {
		return code.String()
	}

	if code == cell.Blank {
		return " "
	}

	return Unknown
}

// Alphabet returns a copy of the letter table.
func (g *Grade1) Alphabet() map[cell.Code]string {
	return copyTable(alphabet)
}

// NumberMap returns a copy of the digit table.
func (g *Grade1) NumberMap() map[cell.Code]string {
	return copyTable(digits)
}

// Indicators returns a copy of the indicator catalogue.
func (g *Grade1) Indicators() map[string]mode.Indicator {
	out := make(map[string]mode.Indicator, len(g.indicators))
	for name, in := range g.indicators {
		in.Codes = append([]cell.Code(nil), in.Codes...)
		out[name] = in
	}
	return out
}

// PrefixCodes returns the codes that can begin a two-cell indicator.
func (g *Grade1) PrefixCodes() []cell.Code {
	codes := make([]cell.Code, 0, len(g.prefixes))
	for c := range g.prefixes {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// IsPrefix reports whether code can begin a two-cell indicator.
func (g *Grade1) IsPrefix(code cell.Code) bool {
	return g.prefixes[code]
}

// ResolveSequence looks up a two-cell indicator.
func (g *Grade1) ResolveSequence(first, second cell.Code, _ mode.Context) (mode.Sequence, bool) {
	name, ok := g.sequences[pair{first, second}]
	if !ok {
		return mode.Sequence{}, false
	}
	in := g.indicators[name]
	return mode.Sequence{
		Name:   name,
		Text:   in.Display,
		Type:   in.Type,
		Action: in.Action,
	}, true
}

// IsSilent reports whether code is a bare indicator sign.
func (g *Grade1) IsSilent(code cell.Code) bool {
	return signs[code]
}

// IsLetter reports whether code is one of the letters a-z.
func (g *Grade1) IsLetter(code cell.Code) bool {
	_, ok := alphabet[code]
	return ok
}

// IsDigitPattern reports whether code is one of the letters a-j, which
// read as digits in number mode.
func (g *Grade1) IsDigitPattern(code cell.Code) bool {
	_, ok := digits[code]
	return ok
}

// InitialState returns the state with every indicator off.
func (g *Grade1) InitialState() mode.State {
	return State{}
}

// UpdateState applies a single committed cell.
func (g *Grade1) UpdateState(st mode.State, code cell.Code, text string) mode.State {
	s := asState(st)
	next := s

	switch {
	case code == cell.Blank:
		next.NumberMode = false
		next.Capital = mode.CapitalOff
		if next.Scope == mode.ScopeSymbol {
			next = next.clearTypeform()
		}
	case code == NumberSign:
		next.NumberMode = true
	case code == CapitalSign:
		next.Capital = mode.CapitalNext
	case code == ContinuousCaps:
		next.Capital = mode.CapitalAll
	case code == LetterSign:
		next.NumberMode = false
	case g.IsLetter(code) && s.Capital == mode.CapitalNext:
		next.Capital = mode.CapitalOff
	case s.NumberMode && !g.IsDigitPattern(code) && text != "," && text != ".":
		next.NumberMode = false
	}

	// A symbol-scope typeform covers exactly one letter.
	if s.Scope == mode.ScopeSymbol && g.IsLetter(code) {
		next = next.clearTypeform()
	}

	return next
}

// ApplyIndicator applies a resolved two-cell indicator.
func (g *Grade1) ApplyIndicator(st mode.State, name string) mode.State {
	s := asState(st)
	in, ok := g.indicators[name]
	if !ok {
		return s
	}

	if tf, ok := in.Type.Typeform(); ok {
		if in.Action == mode.ActionEnd {
			return s.clearTypeform()
		}
		s.Typeform = tf
		s.Scope = in.Action.Scope()
		return s
	}

	switch in.Action {
	case mode.ActionWord, mode.ActionPassage:
		s.Capital = mode.CapitalAll
	case mode.ActionEnd:
		s.Capital = mode.CapitalOff
	}
	return s
}

// RecomputeNumber returns the initial state with number mode re-derived
// from the braille stream: on if the nearest number sign comes before any
// blank cell when scanning backwards.
func (g *Grade1) RecomputeNumber(braille []cell.Code) mode.State {
	s := State{}
	for i := len(braille) - 1; i >= 0; i-- {
		switch braille[i] {
		case NumberSign:
			s.NumberMode = true
			return s
		case cell.Blank:
			return s
		}
	}
	return s
}

// CycleCapital steps the capital mode: off, next, all, off.
func (g *Grade1) CycleCapital(st mode.State) mode.State {
	s := asState(st)
	s.Capital = (s.Capital + 1) % 3
	return s
}

func copyTable(t map[cell.Code]string) map[cell.Code]string {
	out := make(map[cell.Code]string, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

var (
	_ mode.Mode             = (*Grade1)(nil)
	_ mode.NumberRecomputer = (*Grade1)(nil)
	_ mode.CapitalCycler    = (*Grade1)(nil)
)
