package editor

import (
	"github.com/dshills/dotwriter/internal/braille/cell"
	"github.com/dshills/dotwriter/internal/braille/mode"
)

// Preview describes the cell being composed as it would read if confirmed
// now.
type Preview struct {
	Code  cell.Code
	Dots  []int
	Glyph string

	// Text is the print reading of the cell. It is empty when no dot is
	// raised or the cell would complete or begin an indicator.
	Text string

	// Indicator names the two-cell indicator the cell would complete.
	Indicator string

	// Pending is the held indicator cell shown ahead of the composed one.
	Pending      bool
	PendingGlyph string
}

// Preview returns a read-only view of the cell being composed. The held
// cell, if any, is taken into account without changing the editor.
func (e *Editor) Preview() Preview {
	code := e.dots.Code()
	p := Preview{
		Code:  code,
		Dots:  e.dots.Slice(),
		Glyph: code.String(),
	}
	if e.hasPending {
		p.Pending = true
		p.PendingGlyph = e.pending.String()
	}
	if e.dots.Empty() {
		return p
	}

	ctx := e.Context()
	if e.hasPending {
		if seq, ok := e.mode.ResolveSequence(e.pending, code, ctx); ok {
			p.Indicator = seq.Name
			return p
		}
		ctx = e.contextAfter(e.pending, ctx)
	}

	if e.mode.IsPrefix(code) || e.mode.IsSilent(code) {
		return p
	}
	p.Text = e.mode.CodeToText(code, ctx)
	return p
}

// contextAfter returns ctx as it would be after committing code on its own.
func (e *Editor) contextAfter(code cell.Code, ctx mode.Context) mode.Context {
	text := e.mode.CodeToText(code, ctx)
	if e.mode.IsSilent(code) {
		text = ""
	}
	return mode.Context{
		PrecedingText:    ctx.PrecedingText + text,
		PrecedingBraille: ctx.PrecedingBraille + code.String(),
		State:            e.mode.UpdateState(ctx.State, code, text),
	}
}
