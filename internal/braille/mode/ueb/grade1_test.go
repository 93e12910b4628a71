package ueb

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/dotwriter/internal/braille/cell"
	"github.com/dshills/dotwriter/internal/braille/mode"
)

func ctxWith(s State, preceding string) mode.Context {
	return mode.Context{PrecedingText: preceding, State: s}
}

func TestInfo(t *testing.T) {
	info := NewGrade1().Info()
	if info.ID != ID || info.Name != "UEB Grade 1" || info.Language != "en" {
		t.Errorf("Info() = %+v", info)
	}
}

func TestCodeToTextLetters(t *testing.T) {
	g := NewGrade1()
	tests := []struct {
		dots []int
		want string
	}{
		{[]int{1}, "a"},
		{[]int{1, 2}, "b"},
		{[]int{1, 4}, "c"},
		{[]int{2, 4, 5, 6}, "w"},
		{[]int{1, 3, 5, 6}, "z"},
	}

	for _, tt := range tests {
		code := cell.DotsToCode(tt.dots...)
		if got := g.CodeToText(code, ctxWith(State{}, "")); got != tt.want {
			t.Errorf("CodeToText(%v) = %q, want %q", tt.dots, got, tt.want)
		}
	}
}

func TestCodeToTextNumberMode(t *testing.T) {
	g := NewGrade1()
	letters := "abcdefghij"
	numbers := "1234567890"

	for code, letter := range alphabet {
		i := indexOf(letters, letter)
		if i < 0 {
			continue
		}
		if got := g.CodeToText(code, ctxWith(State{NumberMode: true}, "")); got != string(numbers[i]) {
			t.Errorf("number mode %q = %q, want %q", letter, got, string(numbers[i]))
		}
		if got := g.CodeToText(code, ctxWith(State{}, "")); got != letter {
			t.Errorf("letter mode %q = %q, want %q", letter, got, letter)
		}
	}

	// k is not a digit pattern and reads as a letter even in number mode.
	if got := g.CodeToText(0x05, ctxWith(State{NumberMode: true}, "")); got != "k" {
		t.Errorf("k in number mode = %q, want k", got)
	}
}

func indexOf(s, sub string) int {
	for i := range s {
		if s[i:i+1] == sub {
			return i
		}
	}
	return -1
}

func TestCodeToTextCapitals(t *testing.T) {
	g := NewGrade1()
	for _, c := range []mode.CapitalMode{mode.CapitalNext, mode.CapitalAll} {
		if got := g.CodeToText(0x01, ctxWith(State{Capital: c}, "")); got != "A" {
			t.Errorf("a with capital %v = %q, want A", c, got)
		}
	}
	if got := g.CodeToText(0x02, ctxWith(State{Capital: mode.CapitalAll}, "")); got != "," {
		t.Errorf("comma with caps = %q, want ,", got)
	}
}

func TestCodeToTextPunctuationAndSigns(t *testing.T) {
	g := NewGrade1()
	tests := []struct {
		name string
		code cell.Code
		want string
	}{
		{"comma", 0x02, ","},
		{"semicolon", 0x06, ";"},
		{"colon", 0x12, ":"},
		{"period", 0x32, "."},
		{"exclamation", 0x16, "!"},
		{"apostrophe", 0x04, "'"},
		{"hyphen", 0x24, "-"},
		{"slash", 0x2e, "/"},
		{"opening quote", 0x28, "\""},
		{"paren", 0x1c, ")"},
		{"number sign echo", NumberSign, "⠼"},
		{"capital sign echo", CapitalSign, "⠠"},
		{"letter sign echo", LetterSign, "⠐"},
		{"continuous caps echo", ContinuousCaps, "⠰"},
		{"blank", cell.Blank, " "},
		{"unknown", BoldPrefix, Unknown},
		{"unknown full cell", cell.MaxCode, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.CodeToText(tt.code, ctxWith(State{}, "x")); got != tt.want {
				t.Errorf("CodeToText(%#x) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestCodeToTextContextDependent(t *testing.T) {
	g := NewGrade1()
	tests := []struct {
		preceding string
		want      string
	}{
		{"", "\""},
		{"hi ", "\""},
		{"line\n", "\""},
		{"why", "?"},
		{"1", "?"},
	}

	for _, tt := range tests {
		if got := g.CodeToText(QuestionOrQuote, ctxWith(State{}, tt.preceding)); got != tt.want {
			t.Errorf("dots 236 after %q = %q, want %q", tt.preceding, got, tt.want)
		}
	}
}

func TestTablesAreCopies(t *testing.T) {
	g := NewGrade1()

	a := g.Alphabet()
	a[0x01] = "changed"
	if g.Alphabet()[0x01] != "a" {
		t.Error("Alphabet() exposed the internal table")
	}
	if len(a) != 26 {
		t.Errorf("alphabet has %d letters, want 26", len(a))
	}

	n := g.NumberMap()
	if len(n) != 10 || n[0x1a] != "0" {
		t.Errorf("NumberMap() = %v", n)
	}

	ind := g.Indicators()
	ind[ItalicSymbol].Codes[0] = 0
	if g.Indicators()[ItalicSymbol].Codes[0] != ItalicPrefix {
		t.Error("Indicators() exposed internal code slices")
	}
}

func TestPrefixCodes(t *testing.T) {
	g := NewGrade1()
	want := []cell.Code{ScriptPrefix, BoldPrefix, CapitalSign, ItalicPrefix, UnderlinePrefix}
	if diff := cmp.Diff(want, g.PrefixCodes()); diff != "" {
		t.Errorf("PrefixCodes() mismatch (-want +got):\n%s", diff)
	}
	for _, c := range want {
		if !g.IsPrefix(c) {
			t.Errorf("IsPrefix(%#x) = false", c)
		}
	}
	if g.IsPrefix(NumberSign) {
		t.Error("number sign is a single-cell indicator")
	}
}

func TestResolveSequence(t *testing.T) {
	g := NewGrade1()
	tests := []struct {
		first, second cell.Code
		want          mode.Sequence
	}{
		{ItalicPrefix, 0x06, mode.Sequence{Name: ItalicSymbol, Text: "⠨⠆", Type: mode.IndicatorItalic, Action: mode.ActionSymbol}},
		{ItalicPrefix, 0x02, mode.Sequence{Name: ItalicWord, Text: "⠨⠂", Type: mode.IndicatorItalic, Action: mode.ActionWord}},
		{BoldPrefix, 0x36, mode.Sequence{Name: BoldPassage, Text: "⠘⠶", Type: mode.IndicatorBold, Action: mode.ActionPassage}},
		{UnderlinePrefix, 0x04, mode.Sequence{Name: UnderlineTerminator, Text: "⠸⠄", Type: mode.IndicatorUnderline, Action: mode.ActionEnd}},
		{ScriptPrefix, 0x06, mode.Sequence{Name: ScriptSymbol, Text: "⠈⠆", Type: mode.IndicatorScript, Action: mode.ActionSymbol}},
		{CapitalSign, CapitalSign, mode.Sequence{Name: CapitalWord, Text: "⠠⠠", Type: mode.IndicatorCapital, Action: mode.ActionWord}},
		{CapitalSign, 0x04, mode.Sequence{Name: CapitalTerminator, Text: "⠠⠄", Type: mode.IndicatorCapital, Action: mode.ActionEnd}},
	}

	for _, tt := range tests {
		got, ok := g.ResolveSequence(tt.first, tt.second, mode.Context{})
		if !ok {
			t.Errorf("ResolveSequence(%#x, %#x) not found", tt.first, tt.second)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ResolveSequence(%#x, %#x) mismatch (-want +got):\n%s", tt.first, tt.second, diff)
		}
	}

	for _, p := range [][2]cell.Code{
		{ItalicPrefix, 0x01},
		{CapitalSign, 0x01},
		{0x01, 0x02},
		{BoldPrefix, BoldPrefix},
	} {
		if _, ok := g.ResolveSequence(p[0], p[1], mode.Context{}); ok {
			t.Errorf("ResolveSequence(%#x, %#x) should not resolve", p[0], p[1])
		}
	}
}

func TestUpdateState(t *testing.T) {
	g := NewGrade1()
	tests := []struct {
		name string
		from State
		code cell.Code
		text string
		want State
	}{
		{
			name: "space resets number and capital",
			from: State{NumberMode: true, Capital: mode.CapitalAll},
			code: cell.Blank, text: " ",
			want: State{},
		},
		{
			name: "space clears symbol typeform",
			from: State{Typeform: mode.Bold, Scope: mode.ScopeSymbol},
			code: cell.Blank, text: " ",
			want: State{},
		},
		{
			name: "space keeps word typeform",
			from: State{Typeform: mode.Bold, Scope: mode.ScopeWord},
			code: cell.Blank, text: " ",
			want: State{Typeform: mode.Bold, Scope: mode.ScopeWord},
		},
		{
			name: "number sign",
			code: NumberSign,
			want: State{NumberMode: true},
		},
		{
			name: "capital sign",
			code: CapitalSign,
			want: State{Capital: mode.CapitalNext},
		},
		{
			name: "continuous caps",
			code: ContinuousCaps,
			want: State{Capital: mode.CapitalAll},
		},
		{
			name: "letter sign ends number mode",
			from: State{NumberMode: true},
			code: LetterSign,
			want: State{},
		},
		{
			name: "letter consumes capital next",
			from: State{Capital: mode.CapitalNext},
			code: 0x05, text: "K",
			want: State{},
		},
		{
			name: "letter keeps caps lock",
			from: State{Capital: mode.CapitalAll},
			code: 0x05, text: "K",
			want: State{Capital: mode.CapitalAll},
		},
		{
			name: "punctuation does not consume capital next",
			from: State{Capital: mode.CapitalNext},
			code: 0x16, text: "!",
			want: State{Capital: mode.CapitalNext},
		},
		{
			name: "digit keeps number mode",
			from: State{NumberMode: true},
			code: 0x03, text: "2",
			want: State{NumberMode: true},
		},
		{
			name: "comma keeps number mode",
			from: State{NumberMode: true},
			code: 0x02, text: ",",
			want: State{NumberMode: true},
		},
		{
			name: "period keeps number mode",
			from: State{NumberMode: true},
			code: 0x32, text: ".",
			want: State{NumberMode: true},
		},
		{
			name: "other symbol ends number mode",
			from: State{NumberMode: true},
			code: 0x24, text: "-",
			want: State{},
		},
		{
			name: "letter clears symbol typeform",
			from: State{Typeform: mode.Italic, Scope: mode.ScopeSymbol},
			code: 0x01, text: "a",
			want: State{},
		},
		{
			name: "punctuation keeps symbol typeform",
			from: State{Typeform: mode.Italic, Scope: mode.ScopeSymbol},
			code: 0x02, text: ",",
			want: State{Typeform: mode.Italic, Scope: mode.ScopeSymbol},
		},
		{
			name: "letter keeps passage typeform",
			from: State{Typeform: mode.Script, Scope: mode.ScopePassage},
			code: 0x01, text: "a",
			want: State{Typeform: mode.Script, Scope: mode.ScopePassage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.UpdateState(tt.from, tt.code, tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("UpdateState mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateStateDoesNotMutate(t *testing.T) {
	g := NewGrade1()
	from := State{NumberMode: true}
	_ = g.UpdateState(from, cell.Blank, " ")
	if !from.NumberMode {
		t.Error("UpdateState modified its input")
	}
}

func TestApplyIndicator(t *testing.T) {
	g := NewGrade1()
	tests := []struct {
		name      string
		from      State
		indicator string
		want      State
	}{
		{"italic symbol", State{}, ItalicSymbol, State{Typeform: mode.Italic, Scope: mode.ScopeSymbol}},
		{"bold word", State{}, BoldWord, State{Typeform: mode.Bold, Scope: mode.ScopeWord}},
		{"underline passage replaces italic", State{Typeform: mode.Italic, Scope: mode.ScopeWord}, UnderlinePassage, State{Typeform: mode.Underline, Scope: mode.ScopePassage}},
		{"script terminator", State{Typeform: mode.Script, Scope: mode.ScopePassage}, ScriptTerminator, State{}},
		{"capital word", State{}, CapitalWord, State{Capital: mode.CapitalAll}},
		{"capital passage", State{}, CapitalPassage, State{Capital: mode.CapitalAll}},
		{"capital terminator", State{Capital: mode.CapitalAll}, CapitalTerminator, State{}},
		{"capital letter is a no-op", State{}, CapitalLetter, State{}},
		{"unknown name", State{NumberMode: true}, "nope", State{NumberMode: true}},
		{"number mode survives", State{NumberMode: true}, ItalicWord, State{NumberMode: true, Typeform: mode.Italic, Scope: mode.ScopeWord}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ApplyIndicator(tt.from, tt.indicator)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ApplyIndicator mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTypeformScopeInvariant(t *testing.T) {
	g := NewGrade1()
	for name := range g.Indicators() {
		s := asState(g.ApplyIndicator(State{}, name))
		if (s.Typeform == mode.TypeformNone) != (s.Scope == mode.ScopeNone) {
			t.Errorf("%s left typeform %v with scope %v", name, s.Typeform, s.Scope)
		}
	}
}

func TestRecomputeNumber(t *testing.T) {
	g := NewGrade1()
	tests := []struct {
		name    string
		braille []cell.Code
		want    bool
	}{
		{"empty", nil, false},
		{"number sign then digits", []cell.Code{NumberSign, 0x01, 0x03}, true},
		{"space after number", []cell.Code{NumberSign, 0x01, cell.Blank, 0x01}, false},
		{"no number sign", []cell.Code{0x01, 0x03}, false},
		{"new number after space", []cell.Code{cell.Blank, NumberSign}, true},
	}

	for _, tt := range tests {
		got := asState(g.RecomputeNumber(tt.braille))
		if got.NumberMode != tt.want {
			t.Errorf("%s: NumberMode = %v, want %v", tt.name, got.NumberMode, tt.want)
		}
		if got.Capital != mode.CapitalOff || got.Typeform != mode.TypeformNone {
			t.Errorf("%s: RecomputeNumber should reset everything else, got %+v", tt.name, got)
		}
	}
}

func TestCycleCapital(t *testing.T) {
	g := NewGrade1()
	var s mode.State = g.InitialState()
	want := []mode.CapitalMode{mode.CapitalNext, mode.CapitalAll, mode.CapitalOff}
	for _, w := range want {
		s = g.CycleCapital(s)
		if got := s.Status().Capital; got != w {
			t.Errorf("CycleCapital() = %v, want %v", got, w)
		}
	}
}

func TestIsSilent(t *testing.T) {
	g := NewGrade1()
	for _, c := range []cell.Code{NumberSign, CapitalSign, ContinuousCaps, LetterSign} {
		if !g.IsSilent(c) {
			t.Errorf("IsSilent(%#x) = false", c)
		}
	}
	for _, c := range []cell.Code{cell.Blank, 0x01, ItalicPrefix} {
		if g.IsSilent(c) {
			t.Errorf("IsSilent(%#x) = true", c)
		}
	}
}

func TestForeignStateReadsAsInitial(t *testing.T) {
	g := NewGrade1()
	if got := g.CodeToText(0x01, mode.Context{}); got != "a" {
		t.Errorf("CodeToText with nil state = %q, want a", got)
	}
	ptr := &State{NumberMode: true}
	if got := g.CodeToText(0x01, mode.Context{State: ptr}); got != "1" {
		t.Errorf("CodeToText with *State = %q, want 1", got)
	}
}
