package mode

import "testing"

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{CapitalOff.String(), "off"},
		{CapitalNext.String(), "next"},
		{CapitalAll.String(), "all"},
		{CapitalMode(9).String(), "unknown"},
		{TypeformNone.String(), "none"},
		{Italic.String(), "italic"},
		{Script.String(), "script"},
		{ScopeSymbol.String(), "symbol"},
		{ScopePassage.String(), "passage"},
		{IndicatorUnderline.String(), "underline"},
		{ActionEnd.String(), "end"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestIndicatorTypeTypeform(t *testing.T) {
	if _, ok := IndicatorCapital.Typeform(); ok {
		t.Error("capital indicators carry no typeform")
	}
	if tf, ok := IndicatorBold.Typeform(); !ok || tf != Bold {
		t.Errorf("IndicatorBold.Typeform() = %v, %v", tf, ok)
	}
}

func TestActionScope(t *testing.T) {
	tests := map[IndicatorAction]Scope{
		ActionSymbol:  ScopeSymbol,
		ActionWord:    ScopeWord,
		ActionPassage: ScopePassage,
		ActionEnd:     ScopeNone,
	}
	for action, want := range tests {
		if got := action.Scope(); got != want {
			t.Errorf("%v.Scope() = %v, want %v", action, got, want)
		}
	}
}

func TestContextLastText(t *testing.T) {
	tests := []struct {
		text, want string
	}{
		{"", ""},
		{"ab", "b"},
		{"a ", " "},
		{"x⠨⠆", "⠆"},
	}
	for _, tt := range tests {
		if got := (Context{PrecedingText: tt.text}).LastText(); got != tt.want {
			t.Errorf("LastText(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
