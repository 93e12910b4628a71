package editor

import (
	"github.com/dshills/dotwriter/internal/braille/cell"
	"github.com/dshills/dotwriter/internal/braille/mode"
	"github.com/dshills/dotwriter/internal/logging"
)

// Recompute selects how mode state is rebuilt after a deletion.
type Recompute uint8

const (
	// RecomputeReplay replays the mode state machine over every remaining
	// entry.
	RecomputeReplay Recompute = iota

	// RecomputeNumber re-derives number mode only, by scanning back to
	// the nearest number sign or blank cell. Capital and typeform state
	// reset to their initial values.
	RecomputeNumber
)

// String returns the configuration name of the policy.
func (r Recompute) String() string {
	switch r {
	case RecomputeReplay:
		return "replay"
	case RecomputeNumber:
		return "number"
	default:
		return "unknown"
	}
}

// ParseRecompute parses a policy name. Unknown names map to
// RecomputeReplay and report false.
func ParseRecompute(s string) (Recompute, bool) {
	switch s {
	case "replay", "":
		return RecomputeReplay, true
	case "number":
		return RecomputeNumber, true
	default:
		return RecomputeReplay, false
	}
}

// ResultKind is what a confirmed cell did to the document.
type ResultKind uint8

const (
	// ResultCommitted means the cell was read on its own.
	ResultCommitted ResultKind = iota

	// ResultPending means the cell was held back as the possible start of
	// a two-cell indicator.
	ResultPending

	// ResultIndicator means the cell completed a two-cell indicator.
	ResultIndicator
)

// String returns a human-readable result kind.
func (k ResultKind) String() string {
	switch k {
	case ResultCommitted:
		return "committed"
	case ResultPending:
		return "pending"
	case ResultIndicator:
		return "indicator"
	default:
		return "unknown"
	}
}

// Result describes one ConfirmChar call.
type Result struct {
	Kind ResultKind

	// Braille and Text are what the call appended to each stream. A held
	// cell that failed to pair is committed by the next call, so both
	// fields may cover two cells.
	Braille string
	Text    string

	// Sequence is set when Kind is ResultIndicator.
	Sequence *mode.Sequence
}

// Editor is a braille editing session for one mode: the committed streams,
// the cell being composed, a held indicator cell and the mode state.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	mode  mode.Mode
	state mode.State

	dots cell.Dots
	doc  document

	pending    cell.Code
	hasPending bool

	recompute Recompute
	logger    *logging.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithRecompute sets the state recompute policy used after deletions.
func WithRecompute(r Recompute) Option {
	return func(e *Editor) {
		e.recompute = r
	}
}

// WithLogger sets a logger for cell-level debug tracing.
func WithLogger(l *logging.Logger) Option {
	return func(e *Editor) {
		e.logger = l
	}
}

// New creates an empty editor for m.
func New(m mode.Mode, opts ...Option) *Editor {
	e := &Editor{
		mode:  m,
		state: m.InitialState(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.OrNull(e.logger).WithComponent("editor")
	return e
}

// SetRecompute changes the policy used by later deletions.
func (e *Editor) SetRecompute(r Recompute) {
	e.recompute = r
}

// Recompute returns the deletion recompute policy.
func (e *Editor) Recompute() Recompute {
	return e.recompute
}

// AddDot raises dot d in the cell being composed.
func (e *Editor) AddDot(d int) {
	e.dots.Add(d)
}

// RemoveDot lowers dot d in the cell being composed.
func (e *Editor) RemoveDot(d int) {
	e.dots.Remove(d)
}

// ToggleDot flips dot d and reports whether it is now raised.
func (e *Editor) ToggleDot(d int) bool {
	return e.dots.Toggle(d)
}

// HasDot reports whether dot d is raised.
func (e *Editor) HasDot(d int) bool {
	return e.dots.Has(d)
}

// Dots returns the raised dots in ascending order.
func (e *Editor) Dots() []int {
	return e.dots.Slice()
}

// HasActiveDots reports whether any dot is raised.
func (e *Editor) HasActiveDots() bool {
	return !e.dots.Empty()
}

// CurrentCode returns the code of the cell being composed.
func (e *Editor) CurrentCode() cell.Code {
	return e.dots.Code()
}

// ResetDots lowers every dot, leaving the document and state untouched.
func (e *Editor) ResetDots() {
	e.dots.Clear()
}

// ConfirmChar commits the cell being composed.
//
// If a cell is held from the previous call, the pair is first offered to
// the mode as a two-cell indicator. When it does not resolve, the held
// cell is committed on its own and the current cell is processed as if
// nothing had been held. A cell that can begin an indicator is held back
// rather than committed.
func (e *Editor) ConfirmChar() Result {
	code := e.dots.Code()
	brailleStart, textStart := len(e.doc.braille), len(e.doc.text)
	defer e.dots.Clear()

	if e.hasPending {
		first := e.pending
		e.clearPending()

		if seq, ok := e.mode.ResolveSequence(first, code, e.Context()); ok {
			e.commitSequence(first, code, seq)
			e.logger.Debug("indicator %s resolved", seq.Name)
			return Result{
				Kind:     ResultIndicator,
				Braille:  e.doc.braille[brailleStart:],
				Text:     e.doc.text[textStart:],
				Sequence: &seq,
			}
		}

		e.logger.Debug("held cell %s did not pair with %s", first, code)
		e.commitSingle(first)
	}

	if e.mode.IsPrefix(code) {
		e.pending = code
		e.hasPending = true
		return Result{
			Kind:    ResultPending,
			Braille: e.doc.braille[brailleStart:],
			Text:    e.doc.text[textStart:],
		}
	}

	e.commitSingle(code)
	return Result{
		Kind:    ResultCommitted,
		Braille: e.doc.braille[brailleStart:],
		Text:    e.doc.text[textStart:],
	}
}

// commitSingle appends code read on its own and advances the state.
func (e *Editor) commitSingle(code cell.Code) {
	text := e.mode.CodeToText(code, e.Context())
	if e.mode.IsSilent(code) {
		text = ""
	}
	e.doc.push(entry{
		kind:  entrySingle,
		code:  code,
		glyph: code.String(),
		text:  text,
	})
	e.state = e.mode.UpdateState(e.state, code, text)
}

// commitSequence appends both cells of a resolved indicator. The display
// text is split so that each cell owns part of it, first rune first.
func (e *Editor) commitSequence(first, second cell.Code, seq mode.Sequence) {
	firstText, secondText := splitDisplay(seq.Text)
	e.doc.push(entry{
		kind:  entrySequenceFirst,
		code:  first,
		glyph: first.String(),
		text:  firstText,
	})
	e.doc.push(entry{
		kind:      entrySequenceSecond,
		code:      second,
		glyph:     second.String(),
		text:      secondText,
		indicator: seq.Name,
	})
	e.state = e.mode.ApplyIndicator(e.state, seq.Name)
}

func splitDisplay(text string) (string, string) {
	r := []rune(text)
	if len(r) < 2 {
		return "", text
	}
	return string(r[0]), string(r[1:])
}

// AddNewline commits a line break to both streams. A held cell is
// committed on its own first. For mode state a newline acts as a blank
// cell.
func (e *Editor) AddNewline() {
	if e.hasPending {
		first := e.pending
		e.clearPending()
		e.commitSingle(first)
	}
	e.doc.push(entry{kind: entryNewline, glyph: "\n", text: "\n"})
	e.state = e.mode.UpdateState(e.state, cell.Blank, " ")
}

// DeleteLastChar removes the last committed unit. A held indicator cell
// counts as the last unit and is discarded without touching the document.
// Deleting the second cell of an indicator holds the first cell again, so
// the next cell can pair with it. It reports whether anything was removed.
func (e *Editor) DeleteLastChar() bool {
	if e.hasPending {
		e.clearPending()
		return true
	}
	last, ok := e.doc.pop()
	if !ok {
		return false
	}
	if last.kind == entrySequenceSecond {
		if first, ok := e.doc.pop(); ok {
			e.pending = first.code
			e.hasPending = true
		}
	}
	e.recomputeState()
	return true
}

// recomputeState rebuilds mode state from the remaining document.
func (e *Editor) recomputeState() {
	if e.recompute == RecomputeNumber {
		if nr, ok := e.mode.(mode.NumberRecomputer); ok {
			e.state = nr.RecomputeNumber(e.doc.codes())
			return
		}
		e.state = e.mode.InitialState()
		return
	}

	s := e.mode.InitialState()
	for _, en := range e.doc.entries {
		switch en.kind {
		case entrySingle:
			s = e.mode.UpdateState(s, en.code, en.text)
		case entryNewline:
			s = e.mode.UpdateState(s, cell.Blank, " ")
		case entrySequenceSecond:
			s = e.mode.ApplyIndicator(s, en.indicator)
		case entryCapitalCycle:
			if cc, ok := e.mode.(mode.CapitalCycler); ok {
				s = cc.CycleCapital(s)
			}
		}
	}
	e.state = s
}

// ClearAll empties the document and resets every piece of session state.
func (e *Editor) ClearAll() {
	e.doc.reset()
	e.dots.Clear()
	e.clearPending()
	e.state = e.mode.InitialState()
}

// CancelPending discards a held indicator cell. It reports whether one was
// held.
func (e *Editor) CancelPending() bool {
	had := e.hasPending
	e.clearPending()
	return had
}

func (e *Editor) clearPending() {
	e.pending = cell.Blank
	e.hasPending = false
}

// CycleCapital steps the capital mode when the mode supports it. The step
// is recorded in the document so that replay after a deletion keeps it.
func (e *Editor) CycleCapital() bool {
	cc, ok := e.mode.(mode.CapitalCycler)
	if !ok {
		return false
	}
	e.doc.push(entry{kind: entryCapitalCycle})
	e.state = cc.CycleCapital(e.state)
	return true
}

// Mode returns the editor's mode.
func (e *Editor) Mode() mode.Mode {
	return e.mode
}

// State returns the current mode state.
func (e *Editor) State() mode.State {
	return e.state
}

// Status returns the flags of the current mode state.
func (e *Editor) Status() mode.Status {
	return e.state.Status()
}

// Context returns what the mode sees when reading the next cell.
func (e *Editor) Context() mode.Context {
	return mode.Context{
		PrecedingText:    e.doc.text,
		PrecedingBraille: e.doc.braille,
		State:            e.state,
	}
}

// Pending returns the held indicator cell, if any.
func (e *Editor) Pending() (cell.Code, bool) {
	return e.pending, e.hasPending
}

// Braille returns the committed braille stream.
func (e *Editor) Braille() string {
	return e.doc.braille
}

// Text returns the committed print stream.
func (e *Editor) Text() string {
	return e.doc.text
}

// BrailleLen returns the number of characters in the braille stream.
func (e *Editor) BrailleLen() int {
	return e.doc.brailleLen()
}

// TextLen returns the number of characters in the print stream.
func (e *Editor) TextLen() int {
	return e.doc.textLen()
}

// IsEmpty reports whether nothing shows in either stream.
func (e *Editor) IsEmpty() bool {
	return e.doc.empty()
}
