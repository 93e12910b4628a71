package ueb

import "github.com/dshills/dotwriter/internal/braille/mode"

// State is the UEB Grade 1 interpretation context. It is a plain value;
// transitions return a modified copy.
type State struct {
	NumberMode bool
	Capital    mode.CapitalMode
	Typeform   mode.Typeform
	Scope      mode.Scope
}

// Status implements mode.State.
func (s State) Status() mode.Status {
	return mode.Status{
		NumberMode: s.NumberMode,
		Capital:    s.Capital,
		Typeform:   s.Typeform,
		Scope:      s.Scope,
	}
}

func (s State) clearTypeform() State {
	s.Typeform = mode.TypeformNone
	s.Scope = mode.ScopeNone
	return s
}

// asState accepts any mode.State and returns it as a UEB State.
// Foreign states read as the initial state.
func asState(s mode.State) State {
	switch v := s.(type) {
	case State:
		return v
	case *State:
		if v != nil {
			return *v
		}
	}
	return State{}
}
