package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/dotwriter/internal/input/key"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name     string
		event    *tcell.EventKey
		expected string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), "f"},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "Space"},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'F', tcell.ModShift), "F"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "Alt+X"},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModCtrl), "Ctrl+L"},
		{"ctrl from raw byte", tcell.NewEventKey(tcell.KeyRune, 0x11, tcell.ModNone), "Ctrl+Q"},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), "Backspace"},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "Backspace"},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "Tab"},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), "Shift+Tab"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "Enter"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "Esc"},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), "Delete"},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "F5"},
		{"arrow with ctrl", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModCtrl), "Ctrl+Left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertKey(tt.event)
			if !ok {
				t.Fatalf("convertKey() reported an unmapped key")
			}
			want := key.MustParse(tt.expected)
			if got != want {
				t.Errorf("convertKey() = %s (%+v), expected %s (%+v)", got, got, want, want)
			}
		})
	}
}

func TestConvertKey_Unmapped(t *testing.T) {
	if ev, ok := convertKey(tcell.NewEventKey(tcell.KeyPrint, 0, tcell.ModNone)); ok {
		t.Errorf("convertKey(Print) = %s, expected no mapping", ev)
	}
}
