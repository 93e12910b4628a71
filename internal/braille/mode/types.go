package mode

// CapitalMode is how upcoming letters are capitalised.
type CapitalMode uint8

const (
	// CapitalOff leaves letters lower case.
	CapitalOff CapitalMode = iota

	// CapitalNext capitalises the next letter only.
	CapitalNext

	// CapitalAll capitalises every letter until cleared.
	CapitalAll
)

// String returns a human-readable capital mode name.
func (c CapitalMode) String() string {
	switch c {
	case CapitalOff:
		return "off"
	case CapitalNext:
		return "next"
	case CapitalAll:
		return "all"
	default:
		return "unknown"
	}
}

// Typeform is the active emphasis.
type Typeform uint8

const (
	TypeformNone Typeform = iota
	Italic
	Bold
	Underline
	Script
)

// String returns a human-readable typeform name.
func (t Typeform) String() string {
	switch t {
	case TypeformNone:
		return "none"
	case Italic:
		return "italic"
	case Bold:
		return "bold"
	case Underline:
		return "underline"
	case Script:
		return "script"
	default:
		return "unknown"
	}
}

// Scope is how far the active typeform extends.
type Scope uint8

const (
	ScopeNone Scope = iota
	ScopeSymbol
	ScopeWord
	ScopePassage
)

// String returns a human-readable scope name.
func (s Scope) String() string {
	switch s {
	case ScopeNone:
		return "none"
	case ScopeSymbol:
		return "symbol"
	case ScopeWord:
		return "word"
	case ScopePassage:
		return "passage"
	default:
		return "unknown"
	}
}

// IndicatorType is what an indicator acts on.
type IndicatorType uint8

const (
	IndicatorCapital IndicatorType = iota
	IndicatorItalic
	IndicatorBold
	IndicatorUnderline
	IndicatorScript
)

// String returns a human-readable indicator type name.
func (t IndicatorType) String() string {
	switch t {
	case IndicatorCapital:
		return "capital"
	case IndicatorItalic:
		return "italic"
	case IndicatorBold:
		return "bold"
	case IndicatorUnderline:
		return "underline"
	case IndicatorScript:
		return "script"
	default:
		return "unknown"
	}
}

// Typeform returns the typeform set by indicators of this type.
// It returns false for capital indicators.
func (t IndicatorType) Typeform() (Typeform, bool) {
	switch t {
	case IndicatorItalic:
		return Italic, true
	case IndicatorBold:
		return Bold, true
	case IndicatorUnderline:
		return Underline, true
	case IndicatorScript:
		return Script, true
	default:
		return TypeformNone, false
	}
}

// IndicatorAction is the extent an indicator opens, or its terminator.
type IndicatorAction uint8

const (
	ActionSymbol IndicatorAction = iota
	ActionWord
	ActionPassage
	ActionEnd
)

// String returns a human-readable action name.
func (a IndicatorAction) String() string {
	switch a {
	case ActionSymbol:
		return "symbol"
	case ActionWord:
		return "word"
	case ActionPassage:
		return "passage"
	case ActionEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Scope returns the typeform scope opened by the action.
// ActionEnd maps to ScopeNone.
func (a IndicatorAction) Scope() Scope {
	switch a {
	case ActionSymbol:
		return ScopeSymbol
	case ActionWord:
		return ScopeWord
	case ActionPassage:
		return ScopePassage
	default:
		return ScopeNone
	}
}

// Status is the part of a mode state shown to the user.
type Status struct {
	NumberMode bool
	Capital    CapitalMode
	Typeform   Typeform
	Scope      Scope
}
