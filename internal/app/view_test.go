package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/dotwriter/internal/braille/mode"
	"github.com/dshills/dotwriter/internal/braille/mode/ueb"
	"github.com/dshills/dotwriter/internal/config"
	"github.com/dshills/dotwriter/internal/input/key"
)

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name     string
		status   mode.Status
		expected string
	}{
		{"idle", mode.Status{}, ""},
		{"number", mode.Status{NumberMode: true}, "NUM"},
		{"capital next", mode.Status{Capital: mode.CapitalNext}, "CAP"},
		{"capital all", mode.Status{Capital: mode.CapitalAll}, "CAPS"},
		{"typeform", mode.Status{Typeform: mode.Bold, Scope: mode.ScopeWord}, "BOLD WORD"},
		{
			name:     "combined",
			status:   mode.Status{NumberMode: true, Capital: mode.CapitalAll, Typeform: mode.Italic, Scope: mode.ScopePassage},
			expected: "NUM CAPS ITALIC PASSAGE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusLine(tt.status); got != tt.expected {
				t.Errorf("StatusLine() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestViewBindings(t *testing.T) {
	env := newTestEnv(t, Options{})
	v := env.app.View()

	if len(v.Bindings) != len(config.Actions) {
		t.Fatalf("got %d bindings, expected %d", len(v.Bindings), len(config.Actions))
	}
	want := []Binding{
		{Action: config.ActionConfirm, Key: "Space"},
		{Action: config.ActionDelete, Key: "Backspace"},
		{Action: config.ActionReset, Key: "Esc"},
	}
	if diff := cmp.Diff(want, v.Bindings[:3]); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestViewReference(t *testing.T) {
	ref := reference(ueb.NewGrade1())

	if len(ref) != 26 {
		t.Fatalf("got %d rows, expected one per letter", len(ref))
	}
	if diff := cmp.Diff(ReferenceEntry{Glyph: "⠁", Letter: "a", Digit: "1"}, ref[0]); diff != "" {
		t.Errorf("first row mismatch (-want +got):\n%s", diff)
	}
	if last := ref[len(ref)-1]; last.Letter != "z" || last.Digit != "" {
		t.Errorf("last row = %+v", last)
	}
}

func TestViewPreview(t *testing.T) {
	env := newTestEnv(t, Options{})
	env.typeCells(t, "sjkl")
	for _, r := range "fd" {
		env.press(t, key.NewRuneEvent(r, key.ModNone))
	}

	v := env.app.View()
	if v.StatusLine != "NUM" {
		t.Errorf("StatusLine = %q", v.StatusLine)
	}
	if v.Preview.Text != "2" || v.Preview.Glyph != "⠃" {
		t.Errorf("Preview = %+v, expected digit 2", v.Preview)
	}
}
