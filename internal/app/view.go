package app

import (
	"sort"
	"strings"

	"github.com/dshills/dotwriter/internal/braille/editor"
	"github.com/dshills/dotwriter/internal/braille/mode"
	"github.com/dshills/dotwriter/internal/config"
	"github.com/dshills/dotwriter/internal/layout"
)

// View is a snapshot of everything the front end draws.
type View struct {
	Session string
	Mode    mode.Info
	Layout  layout.Layout

	Braille    string
	Text       string
	BrailleLen int
	TextLen    int

	Preview editor.Preview
	Status  mode.Status

	// StatusLine summarizes Status, for example "NUM CAP ITALIC WORD".
	StatusLine string

	// Message is the current status message. It is empty once expired.
	Message Message

	// Bindings lists bound actions in display order.
	Bindings []Binding

	// Reference lists the mode's letters and digits by cell.
	Reference []ReferenceEntry

	Metrics MetricsSnapshot
}

// Binding is one action and the key it is bound to.
type Binding struct {
	Action string
	Key    string
}

// ReferenceEntry is one row of the on-screen cell chart.
type ReferenceEntry struct {
	Glyph  string
	Letter string
	Digit  string
}

// View returns a snapshot of the session.
func (app *Application) View() View {
	app.mu.Lock()
	defer app.mu.Unlock()

	status := app.editor.Status()
	v := View{
		Session:    app.id,
		Mode:       app.editor.Mode().Info(),
		Layout:     app.layout,
		Braille:    app.editor.Braille(),
		Text:       app.editor.Text(),
		BrailleLen: app.editor.BrailleLen(),
		TextLen:    app.editor.TextLen(),
		Preview:    app.editor.Preview(),
		Status:     status,
		StatusLine: StatusLine(status),
		Bindings:   app.bindingList(),
		Reference:  reference(app.editor.Mode()),
		Metrics:    app.metrics.Snapshot(),
	}
	if app.message.Text != "" && app.now().Sub(app.message.At) < app.messageTTL {
		v.Message = app.message
	}
	return v
}

// StatusLine renders mode flags as short upper-case words. An idle state
// renders as the empty string.
func StatusLine(s mode.Status) string {
	var parts []string
	if s.NumberMode {
		parts = append(parts, "NUM")
	}
	switch s.Capital {
	case mode.CapitalNext:
		parts = append(parts, "CAP")
	case mode.CapitalAll:
		parts = append(parts, "CAPS")
	}
	if s.Typeform != mode.TypeformNone {
		tf := strings.ToUpper(s.Typeform.String())
		if s.Scope != mode.ScopeNone {
			tf += " " + strings.ToUpper(s.Scope.String())
		}
		parts = append(parts, tf)
	}
	return strings.Join(parts, " ")
}

func (app *Application) bindingList() []Binding {
	byAction := make(map[string]string, len(app.bindings))
	for ev, action := range app.bindings {
		byAction[action] = ev.String()
	}
	out := make([]Binding, 0, len(byAction))
	for _, action := range config.Actions {
		if k, ok := byAction[action]; ok {
			out = append(out, Binding{Action: action, Key: k})
		}
	}
	return out
}

func reference(m mode.Mode) []ReferenceEntry {
	letters := m.Alphabet()
	digits := m.NumberMap()

	rows := make(map[string]*ReferenceEntry, len(letters))
	for code, letter := range letters {
		g := code.String()
		rows[g] = &ReferenceEntry{Glyph: g, Letter: letter}
	}
	for code, digit := range digits {
		g := code.String()
		if r, ok := rows[g]; ok {
			r.Digit = digit
			continue
		}
		rows[g] = &ReferenceEntry{Glyph: g, Digit: digit}
	}

	out := make([]ReferenceEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Letter != out[j].Letter {
			if out[i].Letter == "" {
				return false
			}
			if out[j].Letter == "" {
				return true
			}
			return out[i].Letter < out[j].Letter
		}
		return out[i].Glyph < out[j].Glyph
	})
	return out
}
